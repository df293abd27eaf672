package sink

import "github.com/rs/zerolog"

// Zerolog forwards lines as messages of a zerolog.Logger.
type Zerolog struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// NewZerolog creates a sink that logs every line at level.
func NewZerolog(logger zerolog.Logger, level zerolog.Level) *Zerolog {
	return &Zerolog{logger: logger, level: level}
}

// Log writes line through zerolog.
func (z *Zerolog) Log(line string) {
	z.logger.WithLevel(z.level).Msg(line)
}
