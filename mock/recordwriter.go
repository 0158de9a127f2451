package mock

import "github.com/jkowalczyk/swdoc"

var _ swdoc.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of swdoc.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(path string, records []swdoc.Record) error
}

func (w *RecordWriter) WriteRecords(path string, records []swdoc.Record) error {
	return w.WriteRecordsFn(path, records)
}
