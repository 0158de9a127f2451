package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/extract"
)

// Output file per record kind, in write order.
var extractOutputs = []struct {
	kind swdoc.RecordKind
	file string
}{
	{swdoc.KindType, "types.xml"},
	{swdoc.KindMember, "member_details.xml"},
	{swdoc.KindEnum, "enum_members.xml"},
	{swdoc.KindMemberList, "type_members.xml"},
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	records, summary, err := deps.Pipeline.Run(deps.Ctx, c.InputDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
		return err
	}

	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return err
	}

	for _, out := range extractOutputs {
		subset := recordsOfKind(records, out.kind)
		if len(subset) == 0 {
			continue
		}
		path := filepath.Join(c.OutputDir, out.file)
		if err := deps.Writer.WriteRecords(path, subset); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d %s records to %s\n", len(subset), out.kind, path)
	}

	// Example pages are crawled in a later phase; hand their URLs over.
	if urls := extract.CollectExampleURLs(records); len(urls) > 0 {
		path := filepath.Join(c.OutputDir, "example_urls.json")
		if err := writeJSON(path, urls); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d example URLs to %s\n", len(urls), path)
	}

	if err := writeJSON(filepath.Join(c.OutputDir, "extraction_summary.json"), summary); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d files (%d failed, %d skipped)\n",
		summary.Files, summary.Failed, summary.Skipped)

	if c.Save {
		fmt.Fprintf(deps.Stdout, "Saved %d records to the database\n", len(records))
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func recordsOfKind(records []swdoc.Record, kind swdoc.RecordKind) []swdoc.Record {
	var subset []swdoc.Record
	for _, rec := range records {
		if rec.Kind() == kind {
			subset = append(subset, rec)
		}
	}
	return subset
}
