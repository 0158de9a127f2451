package mock

import (
	"context"

	"github.com/jkowalczyk/swdoc"
)

var _ swdoc.DocStore = (*DocStore)(nil)

// DocStore is a mock implementation of swdoc.DocStore.
type DocStore struct {
	SaveFn   func(ctx context.Context, doc *swdoc.Doc) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocStore) Save(ctx context.Context, doc *swdoc.Doc) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocStore) Commit() error {
	return s.CommitFn()
}

func (s *DocStore) Abort() error {
	return s.AbortFn()
}
