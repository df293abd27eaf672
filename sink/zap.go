package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap forwards lines as messages of a zap.Logger.
type Zap struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewZap creates a sink that logs every line at level.
func NewZap(logger *zap.Logger, level zapcore.Level) *Zap {
	return &Zap{logger: logger, level: level}
}

// Log writes line unless the zap core has level disabled.
func (z *Zap) Log(line string) {
	if ce := z.logger.Check(z.level, line); ce != nil {
		ce.Write()
	}
}

// Close flushes buffered zap output.
func (z *Zap) Close() error {
	return z.logger.Sync()
}
