package enhancer

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implEnhancer struct {
	completer Completer
	logger    logger.Logger
	now       func() time.Time
}

// Option configures the Enhancer.
type Option func(*implEnhancer)

// WithClock replaces time.Now for the report footer.
func WithClock(now func() time.Time) Option {
	return func(e *implEnhancer) {
		e.now = now
	}
}

// New creates an Enhancer on top of a chat Completer.
func New(c Completer, log logger.Logger, opts ...Option) Enhancer {
	e := &implEnhancer{
		completer: c,
		logger:    log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
