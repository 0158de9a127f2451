package swdoc

import "context"

// RecordKind identifies which documentation page variant a record came from.
type RecordKind string

// Record kinds.
const (
	KindType       RecordKind = "type"
	KindMember     RecordKind = "member"
	KindEnum       RecordKind = "enum"
	KindMemberList RecordKind = "member_list"
)

// Record is one extracted documentation page. A record is built
// incrementally during a single parse and has no identity outside it.
type Record interface {
	Kind() RecordKind

	// RecordName is the display name derived from the page title.
	RecordName() string

	// Validate returns an error if the record is missing required fields.
	Validate() error
}

// Example is a link to a code example page.
type Example struct {
	Name     string `json:"Name"`
	Language string `json:"Language"`
	URL      string `json:"Url"`
}

// Parameter is one entry of a member's parameter list.
type Parameter struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// EnumMember is one value of an enumeration.
type EnumMember struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// MemberLink is one row of a type's member-index page.
type MemberLink struct {
	Name string `json:"Name"`
	URL  string `json:"Url"`
}

// TypeRecord is the documentation of one type (interface, class or
// enumeration). Description and Remarks hold cleaned inline HTML: anchors
// rewritten to <see> tags, every other tag stripped.
type TypeRecord struct {
	ID string `json:"id,omitempty"`
	FileKey
	Name        string    `json:"Name"`
	Description string    `json:"Description,omitempty"`
	Remarks     string    `json:"Remarks,omitempty"`
	Examples    []Example `json:"Examples,omitempty"`
	ContentHash string    `json:"ContentHash,omitempty"`
	SourceFile  string    `json:"SourceFile,omitempty"`
}

func (r *TypeRecord) Kind() RecordKind   { return KindType }
func (r *TypeRecord) RecordName() string { return r.Name }

// Validate returns an error if the record is missing required fields.
func (r *TypeRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "type record name required")
	}
	if r.TypeName == "" {
		return Errorf(EINVALID, "type record file key required")
	}
	return nil
}

// MemberRecord is the documentation of one method or property.
type MemberRecord struct {
	ID string `json:"id,omitempty"`
	FileKey
	Name        string      `json:"Name"`
	MemberKind  string      `json:"MemberKind,omitempty"` // "Method" or "Property"
	OwnerType   string      `json:"OwnerType,omitempty"`  // type name from the page title
	Signature   string      `json:"Signature,omitempty"`
	Description string      `json:"Description,omitempty"`
	Parameters  []Parameter `json:"Parameters,omitempty"`
	Returns     string      `json:"Returns,omitempty"`
	Remarks     string      `json:"Remarks,omitempty"`
	ContentHash string      `json:"ContentHash,omitempty"`
	SourceFile  string      `json:"SourceFile,omitempty"`
}

func (r *MemberRecord) Kind() RecordKind   { return KindMember }
func (r *MemberRecord) RecordName() string { return r.Name }

// Validate returns an error if the record is missing required fields.
func (r *MemberRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "member record name required")
	}
	if r.TypeName == "" {
		return Errorf(EINVALID, "member record file key required")
	}
	return nil
}

// EnumRecord is the member table of one enumeration page.
type EnumRecord struct {
	ID string `json:"id,omitempty"`
	FileKey
	Name        string       `json:"Name"`
	Members     []EnumMember `json:"Members"`
	ContentHash string       `json:"ContentHash,omitempty"`
	SourceFile  string       `json:"SourceFile,omitempty"`
}

func (r *EnumRecord) Kind() RecordKind   { return KindEnum }
func (r *EnumRecord) RecordName() string { return r.Name }

// Validate returns an error if the record is missing required fields.
func (r *EnumRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "enum record name required")
	}
	if len(r.Members) == 0 {
		return Errorf(EINVALID, "enum record has no members")
	}
	return nil
}

// MemberListRecord is the member index of one type: the names and page
// URLs of its public properties and methods.
type MemberListRecord struct {
	ID string `json:"id,omitempty"`
	FileKey
	Name        string       `json:"Name"`
	Properties  []MemberLink `json:"PublicProperties,omitempty"`
	Methods     []MemberLink `json:"PublicMethods,omitempty"`
	ContentHash string       `json:"ContentHash,omitempty"`
	SourceFile  string       `json:"SourceFile,omitempty"`
}

func (r *MemberListRecord) Kind() RecordKind   { return KindMemberList }
func (r *MemberListRecord) RecordName() string { return r.Name }

// Validate returns an error if the record is missing required fields.
func (r *MemberListRecord) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "member list record name required")
	}
	return nil
}

// Parser parses one crawled HTML document into a documentation record.
// Implementations construct a fresh single-use extractor per call, so a
// Parser may be shared across goroutines.
type Parser interface {
	// Parse scans content top to bottom and returns the accumulated
	// record. Returns ENOTFOUND if the page-title marker is absent; the
	// caller logs and skips such pages. urlPrefix (e.g. "/sldworksapi/")
	// is prepended to every relative URL the record carries.
	Parse(content string, key FileKey, urlPrefix string) (Record, error)
}

// RecordWriter serializes a batch of records of one kind to a file.
type RecordWriter interface {
	WriteRecords(path string, records []Record) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Kind      *RecordKind
	Namespace *string
	TypeName  *string

	Offset int
	Limit  int
}

// RecordStore persists extracted records for downstream phases.
type RecordStore interface {
	// CreateRecord stores a record, replacing any previous record with
	// the same kind and file key.
	CreateRecord(ctx context.Context, rec Record) error

	// FindRecords retrieves records matching the filter, ordered by name.
	FindRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
}
