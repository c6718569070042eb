package enhancer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type call struct {
	system string
	user   string
}

type fakeCompleter struct {
	calls   []call
	replies []string
	errAt   int // 1-based call that fails, 0 for none
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls = append(f.calls, call{system: system, user: user})
	n := len(f.calls)
	if n == f.errAt {
		return "", errors.New("upstream 503")
	}
	if n <= len(f.replies) {
		return f.replies[n-1], nil
	}
	return "", nil
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestEnhance_Report(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"# Concepts\n- supply", "# Corrected\nHello class."}}
	e := New(fc, logger.NewNop(), WithClock(fixedClock))

	got, err := e.Enhance(context.Background(), "hello class")
	if err != nil {
		t.Fatalf("Enhance() error = %v", err)
	}

	want := `# Lecture Analysis Report

## Table of Contents
- [Concept Summary](#concept-summary)
- [Corrected Transcription](#corrected-transcription)

---

## Concept Summary

# Concepts
- supply

---

## Corrected Transcription

# Corrected
Hello class.

---

*Generated on: 2025-03-14 09:26:53*
`
	if got != want {
		t.Errorf("Enhance() =\n%s\nwant\n%s", got, want)
	}

	if len(fc.calls) != 2 {
		t.Fatalf("completer called %d times, want 2", len(fc.calls))
	}
	if fc.calls[0].system != conceptPrompt || fc.calls[1].system != correctionPrompt {
		t.Error("prompts sent in the wrong order")
	}
	if fc.calls[0].user != "Please create a concept summary of this lecture:\n\nhello class" {
		t.Errorf("concept request = %q", fc.calls[0].user)
	}
	if fc.calls[1].user != "Please correct and improve this lecture transcription:\n\nhello class" {
		t.Errorf("correction request = %q", fc.calls[1].user)
	}
}

func TestEnhance_Failure(t *testing.T) {
	tests := []struct {
		name      string
		errAt     int
		wantCalls int
	}{
		{"concept summary fails", 1, 1},
		{"correction fails after concept succeeded", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{replies: []string{"concept", "corrected"}, errAt: tt.errAt}
			e := New(fc, logger.NewNop())

			got, err := e.Enhance(context.Background(), "text")
			if !errors.Is(err, errs.ErrEnhancement) {
				t.Fatalf("Enhance() error = %v, want ErrEnhancement", err)
			}
			if got != "" {
				t.Errorf("Enhance() returned partial report %q", got)
			}
			if len(fc.calls) != tt.wantCalls {
				t.Errorf("completer called %d times, want %d", len(fc.calls), tt.wantCalls)
			}
		})
	}
}

func TestPolish(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"# Summary"}}
	e := New(fc, logger.NewNop())

	got, err := e.Polish(context.Background(), "old summary")
	if err != nil {
		t.Fatalf("Polish() error = %v", err)
	}
	if got != "# Summary" {
		t.Errorf("Polish() = %q", got)
	}
	if fc.calls[0].system != polishPrompt {
		t.Error("Polish() did not send the summary prompt")
	}
	if !strings.HasSuffix(fc.calls[0].user, "Markdown document:\n\nold summary") {
		t.Errorf("polish request = %q", fc.calls[0].user)
	}

	fc = &fakeCompleter{errAt: 1}
	if _, err := New(fc, logger.NewNop()).Polish(context.Background(), "x"); !errors.Is(err, errs.ErrEnhancement) {
		t.Errorf("Polish() error = %v, want ErrEnhancement", err)
	}
}
