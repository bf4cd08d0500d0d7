package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var root zerolog.Logger

func configure() {
	zerolog.TimeFieldFormat = timeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
	}

	root = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured sets the global level on first use. Later callers of
// GetLogger or GetLoggerConfigured get the same logger back.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure()
		zerolog.SetGlobalLevel(level)
	})
	return &root
}

func GetLogger() *zerolog.Logger {
	once.Do(configure)
	return &root
}

// For returns a child logger tagged with the owning component, so log lines
// from different packages can be told apart.
func For(component string) zerolog.Logger {
	return GetLogger().With().Str("component", component).Logger()
}
