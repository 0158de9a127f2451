// Package swdoc turns crawled vendor API documentation pages into
// structured records, XMLDoc-shaped XML artifacts, and Markdown suitable
// for LLM consumption. The crawler itself is a separate concern: this
// module starts from HTML files on disk whose filenames encode the
// identity of the documented API entity.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/,
// etree/, sqlite/).
package swdoc
