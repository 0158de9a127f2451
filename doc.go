package swdoc

import "context"

// Doc is one generated Markdown document.
type Doc struct {
	// Path is the output path relative to the store root.
	Path string

	// Title is the document title, written to the frontmatter.
	Title string

	// Source records where the document came from (a source file or URL).
	Source string

	// Content is the Markdown body.
	Content string
}

// Validate returns an error if the document contains invalid fields.
func (d *Doc) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "doc path required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "doc content required")
	}
	return nil
}

// DocStore persists generated documents with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type DocStore interface {
	Save(ctx context.Context, doc *Doc) error
	Commit() error
	Abort() error
}
