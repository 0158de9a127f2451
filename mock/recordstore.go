package mock

import (
	"context"

	"github.com/jkowalczyk/swdoc"
)

var _ swdoc.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of swdoc.RecordStore.
type RecordStore struct {
	CreateRecordFn func(ctx context.Context, rec swdoc.Record) error
	FindRecordsFn  func(ctx context.Context, filter swdoc.RecordFilter) ([]swdoc.Record, error)
}

func (s *RecordStore) CreateRecord(ctx context.Context, rec swdoc.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordStore) FindRecords(ctx context.Context, filter swdoc.RecordFilter) ([]swdoc.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
