// Package errs holds the error kinds shared by the pipeline stages.
// Components wrap their causes with one of these so callers can branch with
// errors.Is instead of matching messages.
package errs

import "errors"

// Run-fatal errors
var (
	ErrConversion    = errors.New("conversion failed")
	ErrSegmentation  = errors.New("segmentation failed")
	ErrNoTranscripts = errors.New("no transcripts produced")
	ErrEnhancement   = errors.New("enhancement failed")
	ErrConfiguration = errors.New("configuration invalid")
)

// Chunk-fatal errors. The pipeline logs these and moves on.
var (
	ErrTranscription = errors.New("transcription failed")
)
