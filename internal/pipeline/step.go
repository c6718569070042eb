package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Step advances run by one stage. Terminal runs are returned unchanged.
func (p *implPipeline) Step(ctx context.Context, run Run) (Run, error) {
	switch run.Stage {
	case StageInit:
		return p.convert(ctx, run)
	case StageConverted:
		return p.segment(ctx, run)
	case StageSegmented:
		return p.transcribe(ctx, run)
	case StageTranscribed:
		return p.assemble(ctx, run)
	case StageAssembled:
		return p.enhance(ctx, run)
	case StageEnhanced:
		return p.finish(ctx, run)
	case StageDone, StageFailed:
		return run, nil
	default:
		return run, fmt.Errorf("unknown stage %d", int(run.Stage))
	}
}

func (p *implPipeline) convert(ctx context.Context, run Run) (Run, error) {
	p.logger.Info(ctx, "Step 1: Converting %s to %s", run.Source.Path, p.cfg.Audio.TargetFormat)
	normalized, err := p.segmenter.Convert(ctx, run.Source.Path, run.WorkDir)
	if err != nil {
		return run, withKind(errs.ErrConversion, err)
	}

	next := run
	next.Normalized = normalized
	next.Stage = StageConverted
	return next, nil
}

func (p *implPipeline) segment(ctx context.Context, run Run) (Run, error) {
	p.logger.Info(ctx, "Step 2: Splitting audio into %ds segments", p.cfg.Audio.ChunkSeconds)
	chunks, err := p.segmenter.Split(ctx, run.Normalized, p.cfg.Audio.ChunkSeconds, run.WorkDir)
	if err != nil {
		return run, withKind(errs.ErrSegmentation, err)
	}
	if len(chunks) == 0 {
		return run, fmt.Errorf("%w: no segments produced", errs.ErrSegmentation)
	}

	next := run
	next.Chunks = append([]models.AudioChunk(nil), chunks...)
	sort.SliceStable(next.Chunks, func(i, j int) bool {
		return next.Chunks[i].Index < next.Chunks[j].Index
	})
	next.Source.Duration = next.Chunks[len(next.Chunks)-1].End
	next.Stage = StageSegmented
	return next, nil
}

// transcribe sends every chunk in Index order. A failed or empty chunk is
// logged and skipped; the run only fails when nothing was transcribed.
func (p *implPipeline) transcribe(ctx context.Context, run Run) (Run, error) {
	p.logger.Info(ctx, "Step 3: Transcribing %d segments", len(run.Chunks))

	var transcripts []models.Transcript
	for i, chunk := range run.Chunks {
		p.logger.Info(ctx, "Transcribing segment %d of %d...", i+1, len(run.Chunks))
		t, err := p.transcriber.Transcribe(ctx, chunk)
		if err != nil {
			p.logger.Warn(ctx, "Skipping segment %d: %v", chunk.Index, err)
			continue
		}
		if strings.TrimSpace(t.Text) == "" {
			p.logger.Warn(ctx, "Skipping segment %d: empty transcription", chunk.Index)
			continue
		}
		transcripts = append(transcripts, t)
	}

	if len(transcripts) == 0 {
		return run, fmt.Errorf("%w: all %d segments failed or were empty", errs.ErrNoTranscripts, len(run.Chunks))
	}
	p.logger.Info(ctx, "Transcribed %d of %d segments", len(transcripts), len(run.Chunks))

	p.writeTranscriptReports(ctx, run.WorkDir, transcripts)

	next := run
	next.Transcripts = transcripts
	next.Stage = StageTranscribed
	return next, nil
}

func (p *implPipeline) assemble(ctx context.Context, run Run) (Run, error) {
	ordered := append([]models.Transcript(nil), run.Transcripts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	texts := make([]string, 0, len(ordered))
	for _, t := range ordered {
		texts = append(texts, t.Text)
	}

	next := run
	next.Transcripts = ordered
	next.Combined = strings.Join(texts, "\n\n")
	next.Stage = StageAssembled
	p.logger.Debug(ctx, "Combined transcript: %d chars", len(next.Combined))
	return next, nil
}

func (p *implPipeline) enhance(ctx context.Context, run Run) (Run, error) {
	p.logger.Info(ctx, "Step 4: Enhancing summary")
	report, err := p.enhancer.Enhance(ctx, run.Combined)
	if err != nil {
		return run, withKind(errs.ErrEnhancement, err)
	}

	next := run
	next.Report = report
	next.Stage = StageEnhanced
	return next, nil
}

func (p *implPipeline) finish(ctx context.Context, run Run) (Run, error) {
	path, err := p.writeReport(ctx, run)
	if err != nil {
		return run, err
	}

	next := run
	next.ArtifactPath = path
	next.Stage = StageDone
	return next, nil
}

func withKind(kind, err error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
