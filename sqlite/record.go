package sqlite

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jkowalczyk/swdoc"
)

// Compile-time interface verification.
var _ swdoc.RecordStore = (*RecordService)(nil)

// RecordService implements swdoc.RecordStore using SQLite. The full record
// is stored as a JSON payload alongside the key columns used for lookup, so
// re-running an extraction phase replaces earlier rows instead of
// duplicating them.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a record, replacing any previous record with the same
// kind and file key.
func (s *RecordService) CreateRecord(ctx context.Context, rec swdoc.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	id, key, hash, source := recordMeta(rec)
	if id == "" {
		id = uuid.New().String()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, kind, name, assembly, namespace, type_name, member_name, content_hash, source_file, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, assembly, namespace, type_name, member_name) DO UPDATE SET
			name = excluded.name,
			content_hash = excluded.content_hash,
			source_file = excluded.source_file,
			payload = excluded.payload,
			created_at = excluded.created_at
	`, id, string(rec.Kind()), rec.RecordName(), key.Assembly, key.Namespace, key.TypeName, key.MemberName,
		hash, source, string(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindRecords retrieves records matching the filter, ordered by name.
func (s *RecordService) FindRecords(ctx context.Context, filter swdoc.RecordFilter) ([]swdoc.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT kind, payload FROM records WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Namespace != nil {
		query.WriteString(" AND namespace = ?")
		args = append(args, *filter.Namespace)
	}
	if filter.TypeName != nil {
		query.WriteString(" AND type_name = ?")
		args = append(args, *filter.TypeName)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []swdoc.Record
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, err
		}
		rec, err := unmarshalRecord(swdoc.RecordKind(kind), payload)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// recordMeta pulls the bookkeeping fields out of a record variant.
func recordMeta(rec swdoc.Record) (id string, key swdoc.FileKey, hash, source string) {
	switch r := rec.(type) {
	case *swdoc.TypeRecord:
		return r.ID, r.FileKey, r.ContentHash, r.SourceFile
	case *swdoc.MemberRecord:
		return r.ID, r.FileKey, r.ContentHash, r.SourceFile
	case *swdoc.EnumRecord:
		return r.ID, r.FileKey, r.ContentHash, r.SourceFile
	case *swdoc.MemberListRecord:
		return r.ID, r.FileKey, r.ContentHash, r.SourceFile
	}
	return "", swdoc.FileKey{}, "", ""
}

func unmarshalRecord(kind swdoc.RecordKind, payload string) (swdoc.Record, error) {
	var rec swdoc.Record
	switch kind {
	case swdoc.KindType:
		rec = &swdoc.TypeRecord{}
	case swdoc.KindMember:
		rec = &swdoc.MemberRecord{}
	case swdoc.KindEnum:
		rec = &swdoc.EnumRecord{}
	case swdoc.KindMemberList:
		rec = &swdoc.MemberListRecord{}
	default:
		return nil, swdoc.Errorf(swdoc.EINTERNAL, "unknown record kind %q in store", kind)
	}
	if err := json.Unmarshal([]byte(payload), rec); err != nil {
		return nil, err
	}
	return rec, nil
}
