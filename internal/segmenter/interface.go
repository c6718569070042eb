package segmenter

import (
	"context"

	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Segmenter normalizes a recording and slices it into fixed-length chunks.
type Segmenter interface {
	Convert(ctx context.Context, sourcePath, workDir string) (string, error)
	Probe(ctx context.Context, path string) (models.AudioSource, error)
	Split(ctx context.Context, path string, chunkSeconds int, workDir string) ([]models.AudioChunk, error)
}
