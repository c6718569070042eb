package enhancer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
)

// Enhance asks for a concept summary and a corrected transcription, one after
// the other, and combines them into the report. Both must succeed; when either
// call fails the other result is dropped and ErrEnhancement is returned.
func (e *implEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	e.logger.Info(ctx, "Requesting concept summary (%d chars)", len(text))
	concept, err := e.completer.Complete(ctx, conceptPrompt, fmt.Sprintf(conceptRequest, text))
	if err != nil {
		return "", fmt.Errorf("%w: concept summary: %w", errs.ErrEnhancement, err)
	}

	e.logger.Info(ctx, "Requesting corrected transcription")
	correction, err := e.completer.Complete(ctx, correctionPrompt, fmt.Sprintf(correctionRequest, text))
	if err != nil {
		return "", fmt.Errorf("%w: corrected transcription: %w", errs.ErrEnhancement, err)
	}

	return fmt.Sprintf(reportTemplate, concept, correction, e.now().Format("2006-01-02 15:04:05")), nil
}

// Polish runs the single summary-enhancement prompt.
func (e *implEnhancer) Polish(ctx context.Context, text string) (string, error) {
	e.logger.Info(ctx, "Requesting enhanced summary (%d chars)", len(text))
	out, err := e.completer.Complete(ctx, polishPrompt, fmt.Sprintf(polishRequest, text))
	if err != nil {
		return "", fmt.Errorf("%w: polish summary: %w", errs.ErrEnhancement, err)
	}
	return out, nil
}
