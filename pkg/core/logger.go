package core

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped zerolog logger writing to w at the given level.
// An empty or unknown level falls back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
