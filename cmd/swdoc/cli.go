package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/extract"
	"github.com/jkowalczyk/swdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB      *sqlite.DB
	Records swdoc.RecordStore

	Pipeline *extract.Pipeline
	Writer   swdoc.RecordWriter

	Extractor swdoc.Extractor
	Converter swdoc.Converter

	TokenCounter swdoc.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract records from crawled API reference pages"`
	Guide   GuideCmd   `cmd:"" help:"Convert crawled programming-guide pages to Markdown"`
	Export  ExportCmd  `cmd:"" help:"Export stored records as per-type Markdown documents"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	InputDir    string `arg:"" help:"Directory of crawled API reference HTML files"`
	OutputDir   string `short:"o" default:"metadata" help:"Directory for the XML output files"`
	DocRoot     string `default:"https://help.solidworks.com/2026/english/api/" help:"Documentation root URL that ../ links resolve against"`
	BaseURL     string `default:"https://help.solidworks.com/2026/english/api/sldworksapi/" help:"Base URL for plain relative links"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent parse limit"`
	Save        bool   `help:"Also persist records to the database"`
	Verbose     bool   `short:"v" help:"Log every parsed page"`
}

// GuideCmd is the "guide" subcommand.
type GuideCmd struct {
	InputDir  string `arg:"" help:"Directory of crawled programming-guide HTML files"`
	OutputDir string `short:"o" default:"guide-docs" help:"Directory for the Markdown output"`
	Verbose   bool   `short:"v" help:"Log every converted page"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	OutputDir string `short:"o" default:"llm-docs" help:"Directory for the Markdown output"`
	Namespace string `help:"Only export types in this namespace"`
	Tokens    bool   `help:"Report the token footprint of the generated documents"`
}
