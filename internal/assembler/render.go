package assembler

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

const (
	displayLayout = "2006-01-02 15:04:05"
	fileLayout    = "20060102_150405"
)

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
	partRule  = strings.Repeat("-", 40)
)

// ReadSections loads each part file. A part that cannot be read keeps its
// index and carries the read error.
func ReadSections(parts []Part) []models.Section {
	sections := make([]models.Section, 0, len(parts))
	for _, p := range parts {
		data, err := os.ReadFile(p.Path)
		sections = append(sections, models.Section{
			Index: p.Index,
			Text:  string(data),
			Err:   err,
		})
	}
	return sections
}

// ordered returns a copy of sections sorted by chunk index.
func ordered(sections []models.Section) []models.Section {
	out := slices.Clone(sections)
	slices.SortStableFunc(out, func(a, b models.Section) int {
		return a.Index - b.Index
	})
	return out
}

// RenderSummary frames every section with a "Part N" delimiter.
func RenderSummary(sections []models.Section, now time.Time) string {
	var b strings.Builder

	b.WriteString("=== Lecture Summary ===\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(displayLayout))

	for _, s := range ordered(sections) {
		fmt.Fprintf(&b, "\n=== Part %d ===\n", s.Index)
		if s.Err != nil {
			fmt.Fprintf(&b, "[Error reading part %d: %v]\n", s.Index, s.Err)
			continue
		}
		b.WriteString(strings.TrimSpace(s.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n=== End of Summary ===\n")
	return b.String()
}

// RenderMerge emits the full transcription with one paragraph per blank-line
// separated block, each trimmed and followed by exactly one blank line.
func RenderMerge(sections []models.Section, now time.Time) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString("COMPLETE LECTURE TRANSCRIPTION\n")
	b.WriteString(heavyRule + "\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n", now.Format(displayLayout))
	fmt.Fprintf(&b, "Total Parts: %d\n", len(sections))
	b.WriteString(lightRule + "\n\n")

	for _, s := range ordered(sections) {
		fmt.Fprintf(&b, "PART %d\n", s.Index)
		b.WriteString(partRule + "\n")

		if s.Err != nil {
			fmt.Fprintf(&b, "[Error reading part %d: %v]\n\n", s.Index, s.Err)
		} else {
			for _, para := range strings.Split(strings.TrimSpace(s.Text), "\n\n") {
				if para = strings.TrimSpace(para); para != "" {
					b.WriteString(para + "\n\n")
				}
			}
		}

		b.WriteString(lightRule + "\n\n")
	}

	b.WriteString(heavyRule + "\n")
	b.WriteString("END OF LECTURE TRANSCRIPTION\n")
	b.WriteString(heavyRule + "\n")
	return b.String()
}
