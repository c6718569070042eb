package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Process runs sourcePath through every stage. Segment files live in
// <temp>/run-<id>, which is removed on every exit path.
func (p *implPipeline) Process(ctx context.Context, sourcePath string) (Run, error) {
	id := p.newID()
	ctx = logger.WithRunID(ctx, id)
	startTime := time.Now()

	run := Run{
		ID:        id,
		Source:    models.NewAudioSource(sourcePath),
		Stage:     StageInit,
		StartedAt: p.now(),
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture processing: %s", sourcePath)
	p.logger.Info(ctx, "========================================")

	if _, err := os.Stat(sourcePath); err != nil {
		return p.fail(ctx, run, fmt.Errorf("%w: input file: %w", errs.ErrConversion, err))
	}

	run.WorkDir = filepath.Join(p.cfg.Paths.Temp, "run-"+id)
	if err := os.MkdirAll(run.WorkDir, 0755); err != nil {
		return p.fail(ctx, run, fmt.Errorf("create work dir: %w", err))
	}
	defer p.cleanupWorkDir(ctx, run.WorkDir)

	for !run.Stage.Terminal() {
		next, err := p.Step(ctx, run)
		if err != nil {
			return p.fail(ctx, run, err)
		}
		p.logger.Debug(ctx, "Stage %s -> %s", run.Stage, next.Stage)
		run = next
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Pipeline complete!")
	p.logger.Info(ctx, "Output report: %s", run.ArtifactPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return run, nil
}

func (p *implPipeline) fail(ctx context.Context, run Run, err error) (Run, error) {
	p.logger.Error(ctx, "Pipeline failed at stage %s: %v", run.Stage, err)
	failed := run
	failed.Stage = StageFailed
	failed.Err = err
	return failed, err
}

func (p *implPipeline) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove work dir %s: %v", dir, err)
		return
	}
	p.logger.Debug(ctx, "Removed work dir: %s", dir)
}
