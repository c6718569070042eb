package enhancer

import "context"

// Completer sends one system+user message pair to a chat model and returns
// the single completion text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Enhancer turns raw transcript text into Markdown documents.
type Enhancer interface {
	// Enhance builds the lecture analysis report from two completions.
	Enhance(ctx context.Context, text string) (string, error)
	// Polish rewrites an existing plain-text summary as Markdown.
	Polish(ctx context.Context, text string) (string, error)
}
