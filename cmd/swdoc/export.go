package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jkowalczyk/swdoc"
	swdocfs "github.com/jkowalczyk/swdoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	typeKind := swdoc.KindType
	filter := swdoc.RecordFilter{Kind: &typeKind}
	if c.Namespace != "" {
		filter.Namespace = &c.Namespace
	}

	types, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
		return err
	}
	if len(types) == 0 {
		fmt.Fprintln(deps.Stdout, "No type records found. Run 'swdoc extract --save' first.")
		return nil
	}

	store := swdocfs.NewStore(filepath.Dir(c.OutputDir), filepath.Base(c.OutputDir))

	var totalTokens int
	for _, rec := range types {
		t, ok := rec.(*swdoc.TypeRecord)
		if !ok {
			continue
		}

		members, err := c.findMembers(deps, t)
		if err != nil {
			return err
		}
		enum, err := c.findEnum(deps, t)
		if err != nil {
			return err
		}

		content := swdoc.FormatTypeDoc(t, members, enum)
		doc := &swdoc.Doc{
			Path:    t.FullTypeName() + ".md",
			Title:   t.Name,
			Source:  t.SourceFile,
			Content: content,
		}
		if err := store.Save(deps.Ctx, doc); err != nil {
			if abortErr := store.Abort(); abortErr != nil {
				deps.Logger.Error("abort failed", "error", abortErr)
			}
			return err
		}

		if deps.TokenCounter != nil {
			n, err := deps.TokenCounter.CountTokens(deps.Ctx, content)
			if err != nil {
				return err
			}
			totalTokens += n
		}
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", swdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d types to %s\n", len(types), store.Dir())
	if deps.TokenCounter != nil {
		fmt.Fprintf(deps.Stdout, "Total tokens: %d\n", totalTokens)
	}
	return nil
}

func (c *ExportCmd) findMembers(deps *Dependencies, t *swdoc.TypeRecord) ([]*swdoc.MemberRecord, error) {
	kind := swdoc.KindMember
	recs, err := deps.Records.FindRecords(deps.Ctx, swdoc.RecordFilter{
		Kind:      &kind,
		Namespace: &t.Namespace,
		TypeName:  &t.TypeName,
	})
	if err != nil {
		return nil, err
	}

	members := make([]*swdoc.MemberRecord, 0, len(recs))
	for _, rec := range recs {
		if m, ok := rec.(*swdoc.MemberRecord); ok {
			members = append(members, m)
		}
	}
	return members, nil
}

func (c *ExportCmd) findEnum(deps *Dependencies, t *swdoc.TypeRecord) (*swdoc.EnumRecord, error) {
	if !strings.HasSuffix(t.TypeName, "_e") {
		return nil, nil
	}

	kind := swdoc.KindEnum
	recs, err := deps.Records.FindRecords(deps.Ctx, swdoc.RecordFilter{
		Kind:      &kind,
		Namespace: &t.Namespace,
		TypeName:  &t.TypeName,
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	enum, ok := recs[0].(*swdoc.EnumRecord)
	if !ok {
		return nil, nil
	}
	return enum, nil
}
