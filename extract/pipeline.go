// Package extract orchestrates the extraction phase: it walks a directory
// of crawled HTML files, routes every file to the parser for its page
// variant, and collects the resulting records.
package extract

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jkowalczyk/swdoc"
	"golang.org/x/sync/errgroup"
)

// Pipeline extracts documentation records from a crawl directory. Files are
// classified by filename: member-index pages first, then member pages, then
// type pages. Enumeration pages produce two records, one from the type
// parser and one from the enum parser.
type Pipeline struct {
	Types       swdoc.Parser
	Members     swdoc.Parser
	Enums       swdoc.Parser
	MemberLists swdoc.Parser
	Records     swdoc.RecordStore // optional; records are also returned
	Logger      *slog.Logger
	Concurrency int
}

// Summary holds the outcome of an extraction run.
type Summary struct {
	Files     int
	Skipped   int
	Failed    int
	Extracted map[swdoc.RecordKind]int
}

// Run extracts records from every recognized HTML file under inputDir.
// Files whose parser reports ENOTFOUND are counted as failed and skipped;
// any other error aborts the run. Records are returned sorted by kind and
// name and, when a store is configured, persisted.
func (p *Pipeline) Run(ctx context.Context, inputDir string) ([]swdoc.Record, *Summary, error) {
	files, err := listHTMLFiles(inputDir)
	if err != nil {
		return nil, nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	summary := &Summary{Extracted: make(map[swdoc.RecordKind]int)}

	var mu sync.Mutex
	var records []swdoc.Record

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			recs, err := p.extractFile(path)
			mu.Lock()
			defer mu.Unlock()
			summary.Files++
			switch {
			case err != nil && (swdoc.ErrorCode(err) == swdoc.ENOTFOUND || swdoc.ErrorCode(err) == swdoc.EINVALID):
				summary.Failed++
				logger.Warn("extraction skipped", "file", path, "error", swdoc.ErrorMessage(err))
				return nil
			case err != nil:
				return err
			case len(recs) == 0:
				summary.Skipped++
				return nil
			}
			for _, rec := range recs {
				summary.Extracted[rec.Kind()]++
			}
			records = append(records, recs...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Kind() != records[j].Kind() {
			return records[i].Kind() < records[j].Kind()
		}
		return records[i].RecordName() < records[j].RecordName()
	})

	if p.Records != nil {
		for _, rec := range records {
			if err := p.Records.CreateRecord(ctx, rec); err != nil {
				return nil, nil, err
			}
		}
	}

	return records, summary, nil
}

// extractFile parses one file into zero or more records. Unrecognized
// filenames yield no records.
func (p *Pipeline) extractFile(path string) ([]swdoc.Record, error) {
	name := filepath.Base(path)

	var parsers []swdoc.Parser
	switch {
	case swdoc.IsMemberListFile(name):
		parsers = []swdoc.Parser{p.MemberLists}
	case swdoc.IsMemberFile(name):
		parsers = []swdoc.Parser{p.Members}
	case swdoc.IsEnumFile(name):
		parsers = []swdoc.Parser{p.Types, p.Enums}
	case swdoc.IsTypeFile(name):
		parsers = []swdoc.Parser{p.Types}
	default:
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)

	key := swdoc.ParseFileKey(name)
	urlPrefix := "/" + filepath.Base(filepath.Dir(path)) + "/"
	hash := fmt.Sprintf("%016x", xxhash.Sum64String(content))

	var records []swdoc.Record
	for _, parser := range parsers {
		rec, err := parser.Parse(content, key, urlPrefix)
		if err != nil {
			return nil, err
		}
		stamp(rec, uuid.NewString(), hash, name)
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// stamp sets the bookkeeping fields shared by every record variant.
func stamp(rec swdoc.Record, id, hash, source string) {
	switch r := rec.(type) {
	case *swdoc.TypeRecord:
		r.ID, r.ContentHash, r.SourceFile = id, hash, source
	case *swdoc.MemberRecord:
		r.ID, r.ContentHash, r.SourceFile = id, hash, source
	case *swdoc.EnumRecord:
		r.ID, r.ContentHash, r.SourceFile = id, hash, source
	case *swdoc.MemberListRecord:
		r.ID, r.ContentHash, r.SourceFile = id, hash, source
	}
}

func listHTMLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(d.Name()) == ".html" || filepath.Ext(d.Name()) == ".htm" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
