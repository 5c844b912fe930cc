package logger

import (
	"os"
	"strings"
	"time"

	"github.com/harunoztuurk/otoservis/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Sensible default so packages can log before Init runs.
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	if strings.EqualFold(cfg.App.Environment, "development") {
		level = zerolog.DebugLevel
	}

	var out = zerolog.New(os.Stdout)
	if strings.EqualFold(cfg.App.Environment, "development") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log = out.Level(level).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
