package sink

import (
	"context"
	"log/slog"
)

// Slog forwards lines as messages of a slog.Logger.
type Slog struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog creates a sink that logs every line at level. A nil logger
// uses slog.Default().
func NewSlog(logger *slog.Logger, level slog.Level) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger, level: level}
}

// Log writes line through slog.
func (s *Slog) Log(line string) {
	s.logger.Log(context.Background(), s.level, line)
}
