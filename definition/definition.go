/*
 * Package definition reads, writes and generates simulation definitions:
 * the building, its elevator banks and the schedules of its people.
 */
package definition

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/dandesousa/elevator-simulation/types"
)

type Format int

const (
	JSON Format = iota
	YAML
)

func (format Format) String() string {
	if format == YAML {
		return "yaml"
	}
	return "json"
}

// FormatOf picks the format from a file extension, JSON unless .yaml or .yml.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return JSON, types.NewConfigError("format", "unknown format "+name, nil)
	}
}

type Definition struct {
	Building      *BuildingDef `json:"building" yaml:"building"`
	ElevatorBanks []BankDef    `json:"elevator_banks" yaml:"elevator_banks"`
	People        []PersonDef  `json:"people" yaml:"people"`
}

type BuildingDef struct {
	Floors int `json:"floors" yaml:"floors"`
}

type BankDef struct {
	UUID             string        `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	DispatchStrategy string        `json:"dispatch_strategy,omitempty" yaml:"dispatch_strategy,omitempty"`
	Elevators        []ElevatorDef `json:"elevators" yaml:"elevators"`
}

/*
 * Timing fields are optional and fall back to the simulation's timing
 */
type ElevatorDef struct {
	UUID             string   `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Capacity         int      `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	StartingLocation int      `json:"starting_location,omitempty" yaml:"starting_location,omitempty"`
	OpenSecs         *float64 `json:"open_secs,omitempty" yaml:"open_secs,omitempty"`
	CloseSecs        *float64 `json:"close_secs,omitempty" yaml:"close_secs,omitempty"`
	WaitSecs         *float64 `json:"wait_secs,omitempty" yaml:"wait_secs,omitempty"`
	TravelSecs       *float64 `json:"travel_secs,omitempty" yaml:"travel_secs,omitempty"`
}

type PersonDef struct {
	UUID                 string     `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	ElevatorCallStrategy string     `json:"elevator_call_strategy,omitempty" yaml:"elevator_call_strategy,omitempty"`
	Schedule             []EventDef `json:"schedule" yaml:"schedule"`
}

type EventDef struct {
	Start       float64 `json:"start" yaml:"start"`
	Level       int     `json:"level" yaml:"level"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

func secsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// Delays must be non-negative and fit a time.Duration.
func checkDelay(field string, secs float64) error {
	switch {
	case math.IsNaN(secs) || secs < 0:
		return types.NewConfigError(field, fmt.Sprintf("invalid delay %v", secs), nil)
	case secs > types.MAX_SECS:
		return types.NewConfigError(field, fmt.Sprintf("delay %v too large", secs), nil)
	}
	return nil
}

func durationToSecs(d time.Duration) *float64 {
	secs := d.Seconds()
	return &secs
}

/*
 * Validate checks the shape of the definition. Level ranges and strategy
 * names are checked when the simulation is built.
 */
func (def *Definition) Validate() error {
	if def.Building == nil {
		return types.NewConfigError("building", "missing", nil)
	}

	if def.Building.Floors < 1 {
		return types.NewConfigError("building.floors", fmt.Sprintf("need at least one floor, got %d", def.Building.Floors), nil)
	}

	if def.ElevatorBanks == nil {
		return types.NewConfigError("elevator_banks", "missing", nil)
	}

	if def.People == nil {
		return types.NewConfigError("people", "missing", nil)
	}

	for i, bank := range def.ElevatorBanks {
		if len(bank.Elevators) == 0 {
			return types.NewConfigError(fmt.Sprintf("elevator_banks[%d].elevators", i), "bank without elevators", nil)
		}

		for j, e := range bank.Elevators {
			field := fmt.Sprintf("elevator_banks[%d].elevators[%d]", i, j)

			if e.Capacity < 0 {
				return types.NewConfigError(field+".capacity", fmt.Sprintf("negative capacity %d", e.Capacity), nil)
			}

			delays := []struct {
				name string
				secs *float64
			}{
				{"open_secs", e.OpenSecs},
				{"close_secs", e.CloseSecs},
				{"wait_secs", e.WaitSecs},
				{"travel_secs", e.TravelSecs},
			}

			for _, delay := range delays {
				if delay.secs == nil {
					continue
				}
				if err := checkDelay(field+"."+delay.name, *delay.secs); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

/*
 * Re-anchors a configuration error at field, keeping the reason of
 * the inner error when it has one
 */
func configErrorAt(field string, err error) error {
	var configErr *types.ConfigError
	if errors.As(err, &configErr) {
		return types.NewConfigError(field, configErr.Reason, configErr.Err)
	}
	return types.NewConfigError(field, "invalid value", err)
}
