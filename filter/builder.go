package filter

import (
	"github.com/philipp01105/logfilter/core"
	"github.com/philipp01105/logfilter/sink"
)

// Builder provides a fluent API for building Filter instances
type Builder struct {
	service  string
	sink     sink.Sink
	level    core.Level
	hexLimit int
	clock    core.Clock
}

// NewBuilder creates a new filter builder for service
func NewBuilder(service string) *Builder {
	return &Builder{
		service:  service,
		level:    core.NoneLevel, // silent until configured
		hexLimit: DefaultHexLimit,
		clock:    core.SystemClock,
	}
}

// WithSink sets the sink. A nil sink turns every call into a no-op.
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithLevel sets the initial threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithHexLimit sets the initial hex limit
func (b *Builder) WithHexLimit(limit int) *Builder {
	b.hexLimit = limit
	return b
}

// WithClock sets the time source, e.g. core.CoarseNow
func (b *Builder) WithClock(clock core.Clock) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// Build creates the Filter instance
func (b *Builder) Build() *Filter {
	f := &Filter{
		service: b.service,
		sink:    b.sink,
		clock:   b.clock,
		metrics: newMetrics(b.service),
	}
	f.SetLevel(b.level)
	f.SetHexLimit(b.hexLimit)
	return f
}
