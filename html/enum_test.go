package html_test

import (
	"testing"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enumKey = swdoc.FileKey{
	Assembly:  "SolidWorks.Interop.swconst",
	Namespace: "SolidWorks.Interop.swconst",
	TypeName:  "swTangencyType_e",
}

const enumPage = `<html><body>
<span id="pagetitle">swTangencyType_e Enumeration</span>
<div>Tangency types.</div>
<h1>Members</h1>
<table class="FilteredItemListTable">
<tr><th>Member</th><th>Description</th></tr>
<tr><td class="MemberNameCell"><strong>swTangencyUnknown</strong></td><td class="DescriptionCell">Tangency is unknown. See <a href="SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IEdge.html">IEdge</a>.</td></tr>
<tr><td class="MemberNameCell"><strong>swTangencyNone</strong></td><td class="DescriptionCell">No tangency.</td></tr>
</table>
<h1>See Also</h1>
</body></html>`

func TestEnumParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts members from the filtered item list table", func(t *testing.T) {
		t.Parallel()

		parser := html.NewEnumParser(testResolver)
		rec, err := parser.Parse(enumPage, enumKey, "/swconstapi/")
		require.NoError(t, err)

		enum, ok := rec.(*swdoc.EnumRecord)
		require.True(t, ok)
		assert.Equal(t, "swTangencyType_e", enum.Name)

		require.Len(t, enum.Members, 2)
		assert.Equal(t, "swTangencyUnknown", enum.Members[0].Name)
		assert.Equal(t, `Tangency is unknown. See <see cref="SolidWorks.Interop.sldworks.IEdge">IEdge</see>.`, enum.Members[0].Description)
		assert.Equal(t, swdoc.EnumMember{Name: "swTangencyNone", Description: "No tangency."}, enum.Members[1])
	})

	t.Run("ignores tables before the Members heading", func(t *testing.T) {
		t.Parallel()

		page := `<span id="pagetitle">swFoo_e Enumeration</span>
<table class="FilteredItemListTable">
<tr><td class="MemberNameCell">early</td><td class="DescriptionCell">Should not appear.</td></tr>
</table>
<h1>Members</h1>
<table class="FilteredItemListTable">
<tr><td class="MemberNameCell">swFooOne</td><td class="DescriptionCell">One.</td></tr>
</table>`
		parser := html.NewEnumParser(testResolver)
		rec, err := parser.Parse(page, enumKey, "/swconstapi/")
		require.NoError(t, err)

		enum := rec.(*swdoc.EnumRecord)
		require.Len(t, enum.Members, 1)
		assert.Equal(t, "swFooOne", enum.Members[0].Name)
	})

	t.Run("skips rows without a name or description", func(t *testing.T) {
		t.Parallel()

		page := `<span id="pagetitle">swFoo_e Enumeration</span>
<h1>Members</h1>
<table class="FilteredItemListTable">
<tr><th>Member</th><th>Description</th></tr>
<tr><td class="MemberNameCell">swOrphan</td></tr>
<tr><td class="MemberNameCell">swFooOne</td><td class="DescriptionCell">One.</td></tr>
</table>`
		parser := html.NewEnumParser(testResolver)
		rec, err := parser.Parse(page, enumKey, "/swconstapi/")
		require.NoError(t, err)

		enum := rec.(*swdoc.EnumRecord)
		require.Len(t, enum.Members, 1)
		assert.Equal(t, "swFooOne", enum.Members[0].Name)
	})

	t.Run("returns ENOTFOUND when page title is missing", func(t *testing.T) {
		t.Parallel()

		parser := html.NewEnumParser(testResolver)
		_, err := parser.Parse("<html><body></body></html>", enumKey, "/swconstapi/")
		assert.Equal(t, swdoc.ENOTFOUND, swdoc.ErrorCode(err))
	})
}
