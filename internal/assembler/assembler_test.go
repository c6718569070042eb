package assembler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestRenderSummary(t *testing.T) {
	sections := []models.Section{
		{Index: 1, Text: "  Opening remarks.\n"},
		{Index: 3, Err: errors.New("permission denied")},
	}

	want := "=== Lecture Summary ===\n" +
		"Generated on: 2026-03-14 09:26:53\n\n" +
		"\n=== Part 1 ===\nOpening remarks.\n" +
		"\n=== Part 3 ===\n[Error reading part 3: permission denied]\n" +
		"\n=== End of Summary ===\n"

	if diff := cmp.Diff(want, RenderSummary(sections, fixedNow)); diff != "" {
		t.Errorf("RenderSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMerge(t *testing.T) {
	sections := []models.Section{
		{Index: 1, Text: "  First paragraph.  \n\n\n  Second paragraph.\n"},
	}

	heavy := strings.Repeat("=", 80)
	light := strings.Repeat("-", 80)
	want := heavy + "\n" +
		"COMPLETE LECTURE TRANSCRIPTION\n" +
		heavy + "\n\n" +
		"Generated on: 2026-03-14 09:26:53\n" +
		"Total Parts: 1\n" +
		light + "\n\n" +
		"PART 1\n" +
		strings.Repeat("-", 40) + "\n" +
		"First paragraph.\n\n" +
		"Second paragraph.\n\n" +
		light + "\n\n" +
		heavy + "\n" +
		"END OF LECTURE TRANSCRIPTION\n" +
		heavy + "\n"

	if diff := cmp.Diff(want, RenderMerge(sections, fixedNow)); diff != "" {
		t.Errorf("RenderMerge() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMergeErrorMarker(t *testing.T) {
	sections := []models.Section{
		{Index: 1, Text: "ok"},
		{Index: 2, Err: errors.New("no such file")},
	}

	got := RenderMerge(sections, fixedNow)
	if !strings.Contains(got, "PART 2\n"+strings.Repeat("-", 40)+"\n[Error reading part 2: no such file]\n\n") {
		t.Errorf("RenderMerge() missing inline error marker:\n%s", got)
	}
	if !strings.Contains(got, "Total Parts: 2\n") {
		t.Errorf("RenderMerge() missing part count:\n%s", got)
	}
}

func TestRenderPreservesChunkOrder(t *testing.T) {
	sections := []models.Section{
		{Index: 3, Text: "C"},
		{Index: 1, Text: "A"},
		{Index: 2, Text: "B"},
	}

	for name, render := range map[string]func([]models.Section, time.Time) string{
		"summary": RenderSummary,
		"merge":   RenderMerge,
	} {
		t.Run(name, func(t *testing.T) {
			got := render(sections, fixedNow)
			a, b, c := strings.Index(got, "A\n"), strings.Index(got, "B\n"), strings.Index(got, "C\n")
			if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
				t.Errorf("sections out of order: A@%d B@%d C@%d\n%s", a, b, c, got)
			}
		})
	}

	if sections[0].Index != 3 {
		t.Error("render must not reorder the caller's slice")
	}
}

func TestReadSections(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "part1.txt")
	if err := os.WriteFile(good, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	sections := ReadSections([]Part{
		{Index: 1, Path: good},
		{Index: 2, Path: filepath.Join(dir, "missing.txt")},
	})

	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Text != "hello" || sections[0].Err != nil {
		t.Errorf("sections[0] = %+v, want text hello", sections[0])
	}
	if !errors.Is(sections[1].Err, os.ErrNotExist) {
		t.Errorf("sections[1].Err = %v, want ErrNotExist", sections[1].Err)
	}
}

func TestWriteDocuments(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	part := filepath.Join(dir, "lecture_part1_transcription.txt")
	if err := os.WriteFile(part, []byte("Only part."), 0644); err != nil {
		t.Fatal(err)
	}

	a := New(logger.NewNop(), WithClock(func() time.Time { return fixedNow }))
	parts := []Part{{Index: 1, Path: part}}

	summary, err := a.WriteSummary(ctx, parts, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if filepath.Base(summary) != "lecture_summary_20260314_092653.txt" {
		t.Errorf("WriteSummary() = %v", summary)
	}

	merged, err := a.WriteMerge(ctx, parts, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("WriteMerge() error = %v", err)
	}
	if filepath.Base(merged) != "complete_lecture_20260314_092653.txt" {
		t.Errorf("WriteMerge() = %v", merged)
	}

	data, err := os.ReadFile(merged)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Only part.\n\n") {
		t.Errorf("merged document missing part text:\n%s", data)
	}
}
