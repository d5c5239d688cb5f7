package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const TIME_FORMAT = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var Log zerolog.Logger

/*
 * New returns a console logger writing to out. Stdout stays free for
 * trip output, so the commands log to stderr.
 */
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: TIME_FORMAT,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func configureLogger(level zerolog.Level) {
	zerolog.TimeFieldFormat = TIME_FORMAT
	Log = New(os.Stderr, level)
}

func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configureLogger(level)
	})
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configureLogger(zerolog.InfoLevel)
	})
	return &Log
}

// ParseLevel falls back to info for an empty name.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}
