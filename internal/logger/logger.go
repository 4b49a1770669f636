package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. format is "console" for
// human readable output or "json" for structured output.
func Init(level, format string) error {
	return initWriter(os.Stdout, level, format)
}

func initWriter(out io.Writer, level, format string) error {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var writer io.Writer
	switch strings.ToLower(format) {
	case "", "console":
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
		writer = out
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
}
