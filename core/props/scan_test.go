package props

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassifyBlankAndComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	if _, ok := ClassifyLine(1, "   \t ").(Blank); !ok {
		t.Errorf("expected whitespace-only line to classify as Blank")
	}
	if _, ok := ClassifyLine(2, "# exclusions for dialog").(Comment); !ok {
		t.Errorf("expected '#' line to classify as Comment")
	}
}

func TestClassifyDefaultChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	dc, ok := ClassifyLine(1, "default.char=65").(DefaultChar)
	if !ok || dc.Value != 65 {
		t.Errorf("expected DefaultChar{65}, have %v", dc)
	}
	for _, line := range []string{
		"default.char=",
		"default.char=abc",
		"default.char=0x41", // hex not allowed here
		"default.char=-1",
		"default.char=1114112", // 0x110000
	} {
		if _, ok := ClassifyLine(1, line).(BadLine); !ok {
			t.Errorf("expected %q to classify as BadLine", line)
		}
	}
}

func TestClassifyInputTextCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	itc, ok := ClassifyLine(1, "inputtextcharset=SYMBOL_CHARSET").(InputTextCharset)
	if !ok || itc.Charset != SymbolCharset {
		t.Errorf("expected InputTextCharset{SYMBOL_CHARSET}, have %v", itc)
	}
	if _, ok := ClassifyLine(1, "inputtextcharset=UTF8_CHARSET").(BadLine); !ok {
		t.Errorf("expected unknown charset enumerant to classify as BadLine")
	}
}

func TestClassifyFontCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	fc, ok := ClassifyLine(1, "fontcharset.dialog.1=sun.awt.motif.X11Dingbats").(FontCharset)
	if !ok {
		t.Fatalf("expected FontCharset statement")
	}
	if fc.Family != "dialog" || fc.Index != 1 || fc.Class != "sun.awt.motif.X11Dingbats" {
		t.Errorf("unexpected extraction: %+v", fc)
	}
	if _, ok := ClassifyLine(1, "fontcharset.dialog.1=  ").(BadLine); !ok {
		t.Errorf("expected empty class name to classify as BadLine")
	}
}

func TestClassifyExclusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	ex, ok := ClassifyLine(1, "exclusion.dialog.0=0500-06FF").(Exclusion)
	if !ok {
		t.Fatalf("expected Exclusion statement")
	}
	if ex.Family != "dialog" || ex.Index != 0 || ex.Start != 0x0500 || ex.End != 0x06FF {
		t.Errorf("unexpected extraction: %+v", ex)
	}
	for _, line := range []string{
		"exclusion.serif.0=0100",        // missing dash
		"exclusion.serif.0=01zz-00FF",   // not hex
		"exclusion.serif.0=0100-00FF",   // start > end
		"exclusion.serif.0=0100-10000",  // end > 0xFFFF
	} {
		if _, ok := ClassifyLine(1, line).(BadLine); !ok {
			t.Errorf("expected %q to classify as BadLine", line)
		}
	}
}

func TestClassifyFontDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	def, ok := ClassifyLine(1, "dialog.1=Wingdings, SYMBOL_CHARSET, NEED_CONVERTED").(FontDefinition)
	if !ok {
		t.Fatalf("expected FontDefinition statement")
	}
	if def.Family != "dialog" || def.Index != 1 || def.FontName != "Wingdings" {
		t.Errorf("unexpected extraction: %+v", def)
	}
	if def.Charset != SymbolCharset || !def.NeedConverted || len(def.Faults) != 0 {
		t.Errorf("unexpected charset/flags: %+v", def)
	}
}

func TestClassifyFontDefinitionBestEffort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	// unknown flag and unknown charset still extract, carrying faults
	def, ok := ClassifyLine(1, "dialog.0=Arial,LATIN_CHARSET,BOLDIFY").(FontDefinition)
	if !ok {
		t.Fatalf("expected best-effort FontDefinition, not a BadLine")
	}
	if len(def.Faults) != 2 {
		t.Errorf("expected 2 faults (flag, charset), have %v", def.Faults)
	}
	if def.Charset != CharsetNone {
		t.Errorf("expected unknown charset to extract as CharsetNone")
	}
	if _, ok := ClassifyLine(1, "dialog.0=Arial").(BadLine); !ok {
		t.Errorf("expected single-part value to classify as BadLine")
	}
}

func TestClassifyUnknownShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	bad, ok := ClassifyLine(7, "this is no statement").(BadLine)
	if !ok {
		t.Fatalf("expected BadLine")
	}
	if !strings.Contains(bad.Reason, "Expected key=value") {
		t.Errorf("unexpected reason: %s", bad.Reason)
	}
	bad, ok = ClassifyLine(8, "3font.0=Arial,ANSI_CHARSET").(BadLine)
	if !ok || !strings.Contains(bad.Reason, "Unknown key") {
		t.Errorf("expected 'Unknown key' diagnostic for key not matching any shape")
	}
}

func TestScanLineNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.props")
	defer teardown()
	//
	input := "default.char=65\r\n\n# comment\ndialog.0=Arial,ANSI_CHARSET\n"
	stmts, err := Scan(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, have %d", len(stmts))
	}
	for i, s := range stmts {
		if s.Pos() != i+1 {
			t.Errorf("statement %d carries line number %d", i, s.Pos())
		}
	}
	if _, ok := stmts[3].(FontDefinition); !ok {
		t.Errorf("expected statement 4 to be a FontDefinition")
	}
}
