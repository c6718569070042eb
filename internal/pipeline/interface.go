package pipeline

import "context"

// Pipeline drives a recording from raw audio to the Markdown report.
type Pipeline interface {
	// Step performs exactly one transition. On error the caller owns moving
	// the run to StageFailed.
	Step(ctx context.Context, run Run) (Run, error)
	// Process runs every stage in a fresh working directory that is removed
	// before returning.
	Process(ctx context.Context, sourcePath string) (Run, error)
	// Polish rewrites a plain-text lecture summary as Markdown. An empty
	// path selects the newest summary in the transcription directory.
	Polish(ctx context.Context, summaryPath string) (string, error)
}
