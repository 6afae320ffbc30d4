package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// initLog writes JSON to dest, or a console log to stderr when dest is empty.
func initLog(dest, level string, debug bool) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	if dest == "" {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), func() {}, nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("error opening file: %w", err)
	}

	log := zerolog.New(f).Level(lvl).With().Timestamp().Logger()

	return log, func() { f.Close() }, nil
}
