package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-flow/internal/assembler"
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/enhancer"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/segmenter"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	segmenter   segmenter.Segmenter
	transcriber transcriber.Client
	assembler   assembler.Assembler
	enhancer    enhancer.Enhancer
	logger      logger.Logger
	now         func() time.Time
	newID       func() string
	writeDocx   func(title, markdown, path string) error
}

// Option configures the Pipeline.
type Option func(*implPipeline)

// WithClock replaces time.Now for artifact names and front matter.
func WithClock(now func() time.Time) Option {
	return func(p *implPipeline) {
		p.now = now
	}
}

// WithIDGenerator replaces the uuid based run id.
func WithIDGenerator(newID func() string) Option {
	return func(p *implPipeline) {
		p.newID = newID
	}
}

// New wires the stage components into a Pipeline.
func New(
	cfg *config.Config,
	seg segmenter.Segmenter,
	tr transcriber.Client,
	asm assembler.Assembler,
	enh enhancer.Enhancer,
	log logger.Logger,
	opts ...Option,
) Pipeline {
	p := &implPipeline{
		cfg:         cfg,
		segmenter:   seg,
		transcriber: tr,
		assembler:   asm,
		enhancer:    enh,
		logger:      log,
		now:         time.Now,
		newID:       uuid.NewString,
		writeDocx:   enhancer.WriteDocx,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
