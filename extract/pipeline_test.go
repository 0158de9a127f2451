package extract_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/extract"
	"github.com/jkowalczyk/swdoc/html"
	"github.com/jkowalczyk/swdoc/mock"
	"github.com/jkowalczyk/swdoc/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResolver = xmldoc.Resolver{
	DocRootURL: "https://help.solidworks.com/2026/english/api/",
	BaseURL:    "https://help.solidworks.com/2026/english/api/sldworksapi/",
}

const (
	typePage = `<span id="pagetitle">IFeatureManager Interface</span>
<div>Provides access to features.</div>
<h1>Example</h1>
<div><a href="Create_Hole_Example_VB.htm">Create Hole (VBA)</a></div>`

	memberPage = `<span id="pagetitle">FeatureExtrusion3 Method (IFeatureManager)</span>
<div>Creates an extrusion.</div>`

	enumPage = `<span id="pagetitle">swTangencyType_e Enumeration</span>
<div>Tangency types.</div>
<h1>Members</h1>
<table class="FilteredItemListTable">
<tr><td class="MemberNameCell">swTangencyNone</td><td class="DescriptionCell">No tangency.</td></tr>
</table>`

	memberListPage = `<span id="pagetitle">IFeatureManager Interface Members</span>
<h1>Public Methods</h1>
<table>
<tr><td class="MembersLinkCell"><a href="A~B.IFeatureManager~FeatureExtrusion3.html">FeatureExtrusion3</a></td></tr>
</table>`
)

func newPipeline() *extract.Pipeline {
	return &extract.Pipeline{
		Types:       html.NewTypeParser(testResolver),
		Members:     html.NewMemberParser(testResolver),
		Enums:       html.NewEnumParser(testResolver),
		MemberLists: html.NewMemberListParser(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeInput(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "sldworksapi")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts one record per page and two for enums", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html":                   typePage,
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager~FeatureExtrusion3.html": memberPage,
			"SolidWorks.Interop.swconst~SolidWorks.Interop.swconst.swTangencyType_e.html":                    enumPage,
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager_members_0a1b2c3d.html":  memberListPage,
		})

		records, summary, err := newPipeline().Run(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 4, summary.Files)
		assert.Equal(t, 0, summary.Skipped)
		assert.Equal(t, 0, summary.Failed)
		assert.Equal(t, map[swdoc.RecordKind]int{
			swdoc.KindType:       2,
			swdoc.KindMember:     1,
			swdoc.KindEnum:       1,
			swdoc.KindMemberList: 1,
		}, summary.Extracted)
		assert.Len(t, records, 5)
	})

	t.Run("stamps id, content hash and source file", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html": typePage,
		})

		records, _, err := newPipeline().Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, records, 1)

		typ := records[0].(*swdoc.TypeRecord)
		assert.NotEmpty(t, typ.ID)
		assert.Len(t, typ.ContentHash, 16)
		assert.Equal(t, "SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html", typ.SourceFile)
		// The URL prefix comes from the input directory name.
		require.Len(t, typ.Examples, 1)
		assert.Equal(t, "/sldworksapi/Create_Hole_Example_VB.htm", typ.Examples[0].URL)
	})

	t.Run("skips namespace and special pages", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks_namespace_1a2b3c4d.html": typePage,
			"functionalcategories_overview.html":                                           typePage,
			"notes.txt":                                                                    "not html",
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html": typePage,
		})

		records, summary, err := newPipeline().Run(context.Background(), dir)
		require.NoError(t, err)

		// The text file is never listed; the namespace and category pages are
		// listed but classified as neither type nor member.
		assert.Equal(t, 3, summary.Files)
		assert.Equal(t, 2, summary.Skipped)
		assert.Len(t, records, 1)
	})

	t.Run("counts unparseable pages as failed without aborting", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IBroken.html":         "<html><body>no title</body></html>",
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html": typePage,
		})

		records, summary, err := newPipeline().Run(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Failed)
		require.Len(t, records, 1)
		assert.Equal(t, "IFeatureManager", records[0].RecordName())
	})

	t.Run("returns records sorted by kind then name", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IZebra.html":   `<span id="pagetitle">IZebra Interface</span>`,
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IAnchor.html":  `<span id="pagetitle">IAnchor Interface</span>`,
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IAnchor_members_0a1b2c3d.html": `<span id="pagetitle">IAnchor Interface Members</span>`,
		})

		records, _, err := newPipeline().Run(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, swdoc.KindMemberList, records[0].Kind())
		assert.Equal(t, "IAnchor", records[1].RecordName())
		assert.Equal(t, "IZebra", records[2].RecordName())
	})

	t.Run("persists records when a store is configured", func(t *testing.T) {
		t.Parallel()

		dir := writeInput(t, map[string]string{
			"SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager.html": typePage,
		})

		var created []swdoc.Record
		p := newPipeline()
		p.Records = &mock.RecordStore{
			CreateRecordFn: func(ctx context.Context, rec swdoc.Record) error {
				created = append(created, rec)
				return nil
			},
		}

		records, _, err := p.Run(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, records, created)
	})

	t.Run("fails on a missing input directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := newPipeline().Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}
