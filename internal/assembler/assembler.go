package assembler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WriteSummary writes lecture_summary_<timestamp>.txt into dir.
func (a *implAssembler) WriteSummary(ctx context.Context, parts []Part, dir string) (string, error) {
	now := a.now()
	path := filepath.Join(dir, fmt.Sprintf("lecture_summary_%s.txt", now.Format(fileLayout)))

	if err := a.write(path, RenderSummary(ReadSections(parts), now)); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	a.logger.Info(ctx, "Lecture summary saved to %s", path)
	return path, nil
}

// WriteMerge writes complete_lecture_<timestamp>.txt into dir.
func (a *implAssembler) WriteMerge(ctx context.Context, parts []Part, dir string) (string, error) {
	now := a.now()
	path := filepath.Join(dir, fmt.Sprintf("complete_lecture_%s.txt", now.Format(fileLayout)))

	if err := a.write(path, RenderMerge(ReadSections(parts), now)); err != nil {
		return "", fmt.Errorf("write merged document: %w", err)
	}

	a.logger.Info(ctx, "Complete lecture document saved to %s", path)
	return path, nil
}

func (a *implAssembler) write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
