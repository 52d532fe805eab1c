package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger opens log_file and returns a logger writing to it at log_level.
// With no log file the logger discards everything so a terminal UI stays
// clean. The returned closer must be called on shutdown.
func (c *Config) Logger() (zerolog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, lvl), f, nil
}

// NewLogger builds the timestamped root logger used by every binary.
func NewLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
