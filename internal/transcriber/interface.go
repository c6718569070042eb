package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// Client uploads audio chunks to a remote speech-to-text endpoint.
type Client interface {
	Transcribe(ctx context.Context, chunk models.AudioChunk) (models.Transcript, error)
	SaveArtifacts(t models.Transcript, dir string) (string, error)
}
