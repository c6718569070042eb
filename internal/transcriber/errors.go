package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
)

// StatusError is returned when the endpoint answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transcription http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == errs.ErrTranscription
}
