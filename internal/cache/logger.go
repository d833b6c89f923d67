package cache

import "github.com/rs/zerolog"

// Logger receives errors from providers whose operations cannot return one
type Logger interface {
	Error(msg string, err error)
}

type zerologLogger struct {
	log zerolog.Logger
}

// NewLogger adapts a zerolog logger for cache error reports.
func NewLogger(l zerolog.Logger) Logger {
	return &zerologLogger{log: l}
}

func (z *zerologLogger) Error(msg string, err error) {
	z.log.Error().Err(err).Str("component", "cache").Msg(msg)
}
