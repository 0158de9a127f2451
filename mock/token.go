package mock

import (
	"context"

	"github.com/jkowalczyk/swdoc"
)

var _ swdoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of swdoc.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
