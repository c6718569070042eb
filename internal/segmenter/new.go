package segmenter

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/pkg/executor"
)

type implSegmenter struct {
	cfg      config.AudioConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Segmenter that drives ffmpeg and ffprobe through exec.
func New(cfg config.AudioConfig, exec executor.Executor, log logger.Logger) Segmenter {
	return &implSegmenter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
