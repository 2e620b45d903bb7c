package resolve

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontprops/core/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, src string) *props.Model {
	t.Helper()
	stmts, err := props.Scan(strings.NewReader(src))
	require.NoError(t, err)
	r := props.Validate(stmts)
	require.Empty(t, r.Errors)
	m, err := props.Normalize(r)
	require.NoError(t, err)
	return m
}

const scenarioProps = `default.char=65
inputtextcharset=ANSI_CHARSET
dialog.0=Arial,ANSI_CHARSET
dialog.1=Wingdings,SYMBOL_CHARSET,NEED_CONVERTED
dialog.2=Courier,ANSI_CHARSET
fontcharset.dialog.1=sun.awt.motif.X11Dingbats
exclusion.dialog.0=0500-06FF
`

func TestResolveScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	m := buildModel(t, scenarioProps)
	d, _ := Resolve(m, "dialog", 0x41, false)
	require.Equal(t, Matched, d.Status)
	require.Equal(t, "Arial", d.FontName)
	require.Equal(t, props.ANSICharset, d.Charset)
}

func TestResolveExclusionPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	// 0x0500 lies in the excluded range, even though the SYMBOL entry
	// with its converter would otherwise match
	m := buildModel(t, scenarioProps)
	for _, cp := range []rune{0x0500, 0x0600, 0x06FF} {
		d, _ := Resolve(m, "dialog", cp, false)
		require.Equal(t, Excluded, d.Status, "U+%04X", cp)
		require.Equal(t, rune(65), d.DefaultChar)
		require.Equal(t, "codepoint is in family exclusion range", d.Reason)
	}
	// boundaries are inclusive, neighbors are not
	d, _ := Resolve(m, "dialog", 0x04FF, false)
	require.NotEqual(t, Excluded, d.Status)
}

func TestResolveAnsiCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	m := buildModel(t, `default.char=63
inputtextcharset=ANSI_CHARSET
serif.0=Georgia,ANSI_CHARSET
`)
	d, _ := Resolve(m, "serif", 0x00FF, false)
	require.Equal(t, Matched, d.Status, "0x00FF is the last ANSI code point")
	d, _ = Resolve(m, "serif", 0x0100, false)
	require.Equal(t, Fallback, d.Status)
	require.Equal(t, rune(63), d.DefaultChar)
	require.Equal(t, "no matching entry", d.Reason)
}

func TestResolveFirstAnsiWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	m := buildModel(t, `default.char=65
inputtextcharset=ANSI_CHARSET
dialog.0=Arial,ANSI_CHARSET
dialog.1=Courier,ANSI_CHARSET
`)
	d, _ := Resolve(m, "dialog", 0x20, false)
	require.Equal(t, "Arial", d.FontName, "lowest index takes the code point")
}

func TestResolveSymbolNeedsConverter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	// a SYMBOL entry without NEED_CONVERTED never matches
	m := buildModel(t, `default.char=65
inputtextcharset=ANSI_CHARSET
dingbats.0=Dingbats,SYMBOL_CHARSET
`)
	d, _ := Resolve(m, "dingbats", 0x41, false)
	require.Equal(t, Fallback, d.Status)

	m = buildModel(t, `default.char=65
inputtextcharset=ANSI_CHARSET
dingbats.0=Dingbats,SYMBOL_CHARSET,NEED_CONVERTED
fontcharset.dingbats.0=sun.awt.motif.X11Dingbats
`)
	d, _ = Resolve(m, "dingbats", 0x2701, false)
	require.Equal(t, Matched, d.Status)
	require.True(t, d.NeedConverted)
	require.Equal(t, "sun.awt.motif.X11Dingbats", d.ConverterClass)
}

func TestResolveUnknownFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	m := buildModel(t, scenarioProps)
	d, _ := Resolve(m, "nosuch", 0x41, false)
	require.Equal(t, Fallback, d.Status)
	require.Equal(t, rune(65), d.DefaultChar)
}

func TestResolveTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.resolve")
	defer teardown()
	//
	m := buildModel(t, scenarioProps)
	_, trace := Resolve(m, "dialog", 0x41, false)
	require.Empty(t, trace, "no trace without explain")
	//
	// 0x0100 skips the ANSI entries, matches the SYMBOL entry
	d, trace := Resolve(m, "dialog", 0x0100, true)
	require.Equal(t, Matched, d.Status)
	require.Equal(t, "Wingdings", d.FontName)
	require.Len(t, trace, 3)
	require.Contains(t, trace[0], "check ANSI Arial (index 0)")
	require.Contains(t, trace[1], "outside ANSI coverage")
	require.Contains(t, trace[2], "check SYMBOL Wingdings (index 1)")
}
