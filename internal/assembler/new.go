package assembler

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implAssembler struct {
	logger logger.Logger
	now    func() time.Time
}

// Option configures the Assembler.
type Option func(*implAssembler)

// WithClock replaces time.Now, used for timestamps and file names.
func WithClock(now func() time.Time) Option {
	return func(a *implAssembler) {
		a.now = now
	}
}

// New creates an Assembler.
func New(log logger.Logger, opts ...Option) Assembler {
	a := &implAssembler{
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
