package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/assembler"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	reportTitle     = "Lecture Analysis Report"
	reportGenerator = "AI Lecture Assistant"
	polishTitle     = "Enhanced Lecture Summary"
	polishGenerator = "DeepSeek AI"
)

type frontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	SourceFile  string `yaml:"source_file"`
	GeneratedBy string `yaml:"generated_by"`
}

// renderDocument prefixes body with a YAML front matter block.
func renderDocument(fm frontMatter, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}

	buf.WriteString("---\n\n")
	buf.WriteString(body)
	return buf.String(), nil
}

func stamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// writeReport stores the enhanced report and, when enabled, a DOCX copy.
func (p *implPipeline) writeReport(ctx context.Context, run Run) (string, error) {
	now := p.now()
	dir := p.cfg.Paths.Output
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc, err := renderDocument(frontMatter{
		Title:       reportTitle,
		Date:        now.Format("2006-01-02 15:04:05"),
		SourceFile:  filepath.Base(run.Source.Path),
		GeneratedBy: reportGenerator,
	}, run.Report)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("lecture_analysis_%s.md", stamp(now)))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	p.logger.Info(ctx, "Lecture analysis saved to: %s", path)

	if p.cfg.Report.Docx {
		docxPath := strings.TrimSuffix(path, ".md") + ".docx"
		if err := p.writeDocx(reportTitle, run.Report, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX report: %v", err)
		} else {
			p.logger.Info(ctx, "DOCX report saved to: %s", docxPath)
		}
	}

	return path, nil
}

// writeTranscriptReports saves per-segment transcripts and the plain-text
// summary and merge views. Segment files only land in the transcription
// directory when report.save_transcripts is set; otherwise they are staged in
// the run's work dir and removed with it. Every failure here is a warning.
func (p *implPipeline) writeTranscriptReports(ctx context.Context, workDir string, transcripts []models.Transcript) {
	rc := p.cfg.Report
	if !rc.SaveTranscripts && !rc.Summary && !rc.Merge {
		return
	}

	dir := p.cfg.Paths.Transcriptions
	segmentDir := dir
	if !rc.SaveTranscripts {
		segmentDir = filepath.Join(workDir, "transcriptions")
	}

	parts := make([]assembler.Part, 0, len(transcripts))
	for _, t := range transcripts {
		path, err := p.transcriber.SaveArtifacts(t, segmentDir)
		if err != nil {
			p.logger.Warn(ctx, "Failed to save transcript for segment %d: %v", t.Index, err)
			continue
		}
		parts = append(parts, assembler.Part{Index: t.Index, Path: path})
	}
	if len(parts) == 0 {
		return
	}

	if rc.Summary {
		if path, err := p.assembler.WriteSummary(ctx, parts, dir); err != nil {
			p.logger.Warn(ctx, "Failed to write lecture summary: %v", err)
		} else {
			p.logger.Info(ctx, "Lecture summary saved to: %s", path)
		}
	}
	if rc.Merge {
		if path, err := p.assembler.WriteMerge(ctx, parts, dir); err != nil {
			p.logger.Warn(ctx, "Failed to write merged transcription: %v", err)
		} else {
			p.logger.Info(ctx, "Complete lecture saved to: %s", path)
		}
	}
}
