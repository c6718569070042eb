package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Stage is the position of a Run in the pipeline.
type Stage int

const (
	StageInit Stage = iota
	StageConverted
	StageSegmented
	StageTranscribed
	StageAssembled
	StageEnhanced
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageInit:        "init",
	StageConverted:   "converted",
	StageSegmented:   "segmented",
	StageTranscribed: "transcribed",
	StageAssembled:   "assembled",
	StageEnhanced:    "enhanced",
	StageDone:        "done",
	StageFailed:      "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// Run is one pass over one recording. Step never mutates the Run it is given;
// it returns the next value.
type Run struct {
	ID           string
	Source       models.AudioSource
	WorkDir      string
	Stage        Stage
	Normalized   string
	Chunks       []models.AudioChunk
	Transcripts  []models.Transcript
	Combined     string
	Report       string
	ArtifactPath string
	Err          error
	StartedAt    time.Time
}
