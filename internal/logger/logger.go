package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. Level falls back to info when the
// configured value does not parse.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
