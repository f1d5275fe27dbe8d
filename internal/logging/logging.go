package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger appending to path. With an empty path the
// logger discards everything, since the terminal belongs to the game
// screen. The returned close func is never nil.
func New(path, level string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return zerolog.Nop(), noop, nil
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "tritris").
		Logger()
	return logger, f.Close, nil
}
