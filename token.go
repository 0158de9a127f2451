package swdoc

import "context"

// TokenCounter counts tokens in text for a specific model. The export
// phase uses it to report the context-window footprint of generated
// Markdown.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
