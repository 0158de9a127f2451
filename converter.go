package swdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// content HTML (e.g., from an Extractor), not a full page.
	Convert(html string) (string, error)
}
