package models

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// AudioSource is the caller supplied input recording.
type AudioSource struct {
	Path     string  `json:"path"`
	Format   string  `json:"format"`
	Duration float64 `json:"duration"`
}

// NewAudioSource infers the format from the file extension.
func NewAudioSource(path string) AudioSource {
	return AudioSource{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
}

// AudioChunk is one exported time slice of a source. Index is 1-based.
type AudioChunk struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Path  string  `json:"path"`
}

// Duration returns the chunk length in seconds.
func (c AudioChunk) Duration() float64 {
	return c.End - c.Start
}

// Transcript is the recognized text for one chunk.
// Index is copied from the chunk so reassembly never depends on slice order.
type Transcript struct {
	Index     int             `json:"index"`
	ChunkPath string          `json:"chunk_path"`
	Text      string          `json:"text"`
	Raw       json.RawMessage `json:"raw,omitempty"`
}

// Section is one part of an assembled document. A non-nil Err is rendered
// as an inline marker instead of text.
type Section struct {
	Index int
	Text  string
	Err   error
}
