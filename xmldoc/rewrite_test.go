package xmldoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_ConvertLinks(t *testing.T) {
	t.Parallel()

	t.Run("rewrites type anchor to see cref", func(t *testing.T) {
		t.Parallel()
		in := `See <a href="SolidWorks.Interop.sldworks~SolidWorks.Interop.sldworks.IFeatureManager~AdvancedHole.html">IFeatureManager::AdvancedHole</a> for details.`
		out := testResolver.ConvertLinks(in)
		assert.Equal(t, `See <see cref="SolidWorks.Interop.sldworks.IFeatureManager.AdvancedHole">IFeatureManager::AdvancedHole</see> for details.`, out)
	})

	t.Run("rewrites guide anchor to see href", func(t *testing.T) {
		t.Parallel()
		in := `Read <a href="../sldworksapiprogguide//Overview/SOLIDWORKS_Connected.htm">SOLIDWORKS Design</a> first.`
		out := testResolver.ConvertLinks(in)
		assert.Equal(t, `Read <see href="https://help.solidworks.com/2026/english/api/sldworksapiprogguide//Overview/SOLIDWORKS_Connected.htm">SOLIDWORKS Design</see> first.`, out)
	})

	t.Run("preserves word spacing around rewritten anchors", func(t *testing.T) {
		t.Parallel()
		in := `Text before <a href="A~B.C.html">C</a> text after.`
		out := testResolver.ConvertLinks(in)
		assert.Contains(t, out, ` <see cref="B.C">C</see> `)
		assert.NotContains(t, out, "<a href=")
	})

	t.Run("hoists whitespace out of anchor text", func(t *testing.T) {
		t.Parallel()
		in := `Call<a href="A~B.C.html"> C </a>now.`
		out := testResolver.ConvertLinks(in)
		assert.Equal(t, `Call <see cref="B.C">C</see> now.`, out)
	})

	t.Run("strips residual markup but keeps see tags", func(t *testing.T) {
		t.Parallel()
		in := `<p>Use <a href="A~B.C.html">C</a> with <b>care</b>.</p>`
		out := testResolver.ConvertLinks(in)
		assert.Equal(t, `Use <see cref="B.C">C</see> with care.`, out)
	})

	t.Run("unescapes entities", func(t *testing.T) {
		t.Parallel()
		out := testResolver.ConvertLinks("a&nbsp;&lt;&nbsp;b &amp; c")
		assert.Equal(t, "a < b & c", out)
	})

	t.Run("idempotent on already rewritten text", func(t *testing.T) {
		t.Parallel()
		once := testResolver.ConvertLinks(`See <a href="A~B.C.html">C</a>.`)
		twice := testResolver.ConvertLinks(once)
		assert.Equal(t, once, twice)
	})

	t.Run("never nests see tags", func(t *testing.T) {
		t.Parallel()
		in := `<a href="A~B.C.html">C</a> and <a href="A~B.D.html">D</a>`
		out := testResolver.ConvertLinks(in)
		assert.NotContains(t, out, "<see cref=\"B.C\"><see")
		assert.Equal(t, `<see cref="B.C">C</see> and <see cref="B.D">D</see>`, out)
	})

	t.Run("keeps double colons in visible text while cref uses dots", func(t *testing.T) {
		t.Parallel()
		in := `<a href="A~B.IC~M.html">IC::M</a>`
		out := testResolver.ConvertLinks(in)
		assert.Equal(t, `<see cref="B.IC.M">IC::M</see>`, out)
	})
}
