package swdoc

// ExtractResult holds the main content of a programming-guide page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as HTML, with navigation chrome
	// (header, TOC pane, footer) removed.
	ContentHTML string
}

// Extractor isolates the main content of guide pages before Markdown
// conversion.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
