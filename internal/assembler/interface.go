package assembler

import "context"

// Part points at one transcript text file. Index is the chunk index.
type Part struct {
	Index int
	Path  string
}

// Assembler writes the plain-text summary and merge documents.
type Assembler interface {
	WriteSummary(ctx context.Context, parts []Part, dir string) (string, error)
	WriteMerge(ctx context.Context, parts []Part, dir string) (string, error)
}
