package sink

import "github.com/sirupsen/logrus"

// Logrus forwards lines as messages of a logrus.Logger.
type Logrus struct {
	entry *logrus.Entry
	level logrus.Level
}

// NewLogrus creates a sink that logs every line at level.
func NewLogrus(logger *logrus.Logger, level logrus.Level) *Logrus {
	return &Logrus{entry: logrus.NewEntry(logger), level: level}
}

// Log writes line through logrus.
func (l *Logrus) Log(line string) {
	l.entry.Log(l.level, line)
}
