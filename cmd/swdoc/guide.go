package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jkowalczyk/swdoc"
	swdocfs "github.com/jkowalczyk/swdoc/fs"
)

// Run executes the guide command.
func (c *GuideCmd) Run(deps *Dependencies) error {
	store := swdocfs.NewStore(filepath.Dir(c.OutputDir), filepath.Base(c.OutputDir))

	var saved, failed int
	err := filepath.WalkDir(c.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isHTMLFile(d.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result, err := deps.Extractor.Extract(string(data))
		if err != nil {
			failed++
			deps.Logger.Warn("guide page skipped", "file", path, "error", swdoc.ErrorMessage(err))
			return nil
		}

		markdown, err := deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			failed++
			deps.Logger.Warn("guide page skipped", "file", path, "error", swdoc.ErrorMessage(err))
			return nil
		}

		rel, err := filepath.Rel(c.InputDir, path)
		if err != nil {
			return err
		}

		doc := &swdoc.Doc{
			Path:    markdownPath(rel),
			Title:   result.Title,
			Source:  d.Name(),
			Content: markdown,
		}
		if err := store.Save(deps.Ctx, doc); err != nil {
			return err
		}

		saved++
		deps.Logger.Debug("guide page converted", "file", path, "title", result.Title)
		return nil
	})
	if err != nil {
		if abortErr := store.Abort(); abortErr != nil {
			deps.Logger.Error("abort failed", "error", abortErr)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
		return err
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d guide pages to %s (%d failed)\n", saved, store.Dir(), failed)
	return nil
}

func isHTMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// markdownPath swaps the HTML extension for .md, keeping the relative
// directory layout of the crawl.
func markdownPath(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".md"
}
