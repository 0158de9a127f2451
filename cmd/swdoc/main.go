package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jkowalczyk/swdoc"
	swdocetree "github.com/jkowalczyk/swdoc/etree"
	"github.com/jkowalczyk/swdoc/extract"
	"github.com/jkowalczyk/swdoc/gemini"
	"github.com/jkowalczyk/swdoc/goquery"
	"github.com/jkowalczyk/swdoc/html"
	"github.com/jkowalczyk/swdoc/htmltomarkdown"
	swdocslog "github.com/jkowalczyk/swdoc/slog"
	"github.com/jkowalczyk/swdoc/sqlite"
	"github.com/jkowalczyk/swdoc/trafilatura"
	"github.com/jkowalczyk/swdoc/xmldoc"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the record store.
	DB *sqlite.DB

	// Record store for end-to-end testing.
	Records swdoc.RecordStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("swdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'swdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli)

	// Open the database for commands that read or write records.
	if cmd == "export" || (cmd == "extract" && cli.Extract.Save) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SWDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Records = sqlite.NewRecordService(m.DB)
		deps.DB = m.DB
		deps.Records = m.Records
	}

	// Wire command-specific dependencies.
	switch cmd {
	case "extract":
		resolver := xmldoc.Resolver{
			DocRootURL: cli.Extract.DocRoot,
			BaseURL:    cli.Extract.BaseURL,
		}
		deps.Pipeline = &extract.Pipeline{
			Types:       swdocslog.NewLoggingParser(html.NewTypeParser(resolver), deps.Logger),
			Members:     swdocslog.NewLoggingParser(html.NewMemberParser(resolver), deps.Logger),
			Enums:       swdocslog.NewLoggingParser(html.NewEnumParser(resolver), deps.Logger),
			MemberLists: swdocslog.NewLoggingParser(html.NewMemberListParser(), deps.Logger),
			Records:     deps.Records,
			Logger:      deps.Logger,
			Concurrency: cli.Extract.Concurrency,
		}
		deps.Writer = swdocetree.NewWriter()

	case "guide":
		deps.Extractor = goquery.NewGuideExtractor(trafilatura.NewExtractor())
		deps.Converter = htmltomarkdown.NewConverter()

	case "export":
		if cli.Export.Tokens {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.TokenCounter = tokenCounter
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

func newLogger(w io.Writer, cli *CLI) *slog.Logger {
	level := slog.LevelInfo
	if cli.Extract.Verbose || cli.Guide.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("SWDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "swdoc.db"
	}
	dir := filepath.Join(home, ".swdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "swdoc.db")
}
