// Package fs provides file-based storage for generated Markdown documents.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jkowalczyk/swdoc"
)

// Ensure Store implements swdoc.DocStore at compile time.
var _ swdoc.DocStore = (*Store)(nil)

// Store implements swdoc.DocStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved atomically on
// Commit, so a consumer never observes a half-written output set.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a document to the temporary directory.
func (s *Store) Save(ctx context.Context, doc *swdoc.Doc) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), doc.Path)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDoc(doc)), 0644)
}

// FormatDoc formats a document with YAML frontmatter.
func FormatDoc(doc *swdoc.Doc) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(doc.Title)
	if doc.Source != "" {
		b.WriteString("\nsource: ")
		b.WriteString(doc.Source)
	}
	b.WriteString("\ngenerated: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Commit atomically replaces the final directory with the temporary one.
func (s *Store) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Dir returns the final output directory.
func (s *Store) Dir() string {
	return s.finalDir()
}
