package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Polish enhances a plain-text lecture summary into
// <enhanced>/enhanced_summary_<ts>.md and returns its path.
func (p *implPipeline) Polish(ctx context.Context, summaryPath string) (string, error) {
	if summaryPath == "" {
		latest, err := latestSummary(p.cfg.Paths.Transcriptions)
		if err != nil {
			return "", err
		}
		summaryPath = latest
	}

	p.logger.Info(ctx, "=== Starting Summary Enhancement ===")
	p.logger.Info(ctx, "Processing file: %s", filepath.Base(summaryPath))

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		return "", fmt.Errorf("read summary: %w", err)
	}

	body, err := p.enhancer.Polish(ctx, string(data))
	if err != nil {
		return "", err
	}

	now := p.now()
	doc, err := renderDocument(frontMatter{
		Title:       polishTitle,
		Date:        now.Format("2006-01-02 15:04:05"),
		SourceFile:  filepath.Base(summaryPath),
		GeneratedBy: polishGenerator,
	}, body)
	if err != nil {
		return "", err
	}

	dir := p.cfg.Paths.Enhanced
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create enhanced dir: %w", err)
	}
	out := filepath.Join(dir, fmt.Sprintf("enhanced_summary_%s.md", stamp(now)))
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write enhanced summary: %w", err)
	}

	p.logger.Info(ctx, "Enhanced summary saved to %s", out)
	return out, nil
}

// latestSummary picks the lecture_summary_*.txt with the greatest timestamp.
func latestSummary(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read transcription dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "lecture_summary_") && strings.HasSuffix(name, ".txt") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no lecture summary files in %s", dir)
	}

	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
