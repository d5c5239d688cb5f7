package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFloor       = errors.New("invalid floor")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidStopRemoval = errors.New("stop not held by elevator")
	ErrCapacityExceeded   = errors.New("elevator capacity exceeded")
	ErrDoorsClosed        = errors.New("elevator doors are closed")
	ErrNotAboard          = errors.New("person is not aboard")
	ErrAlreadyAboard      = errors.New("person is already aboard")
	ErrInvalidTime        = errors.New("schedule time outside of day")
	ErrStarted            = errors.New("simulation already started")
	ErrConfiguration      = errors.New("configuration error")
)

/*
 * ConfigError reports a malformed simulation definition or runtime config.
 * Field is the path of the offending value, e.g. "people[3].schedule[0].level".
 */
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (err *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConfiguration, err.Reason)
	if err.Field != "" {
		msg = fmt.Sprintf("%s: %s: %s", ErrConfiguration, err.Field, err.Reason)
	}
	if err.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Err)
	}
	return msg
}

func (err *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

func NewConfigError(field string, reason string, cause error) *ConfigError {
	return &ConfigError{Field: field, Reason: reason, Err: cause}
}
