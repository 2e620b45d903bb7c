package resolve

import (
	"fmt"

	"github.com/npillmayer/fontprops/core/props"
)

// Status classifies a resolution outcome.
type Status int

const (
	Matched  Status = iota // a font entry covers the code point
	Excluded               // the code point lies in a family exclusion range
	Fallback               // no entry matched; default character applies
)

func (st Status) String() string {
	switch st {
	case Matched:
		return "OK"
	case Excluded:
		return "EXCLUDED"
	case Fallback:
		return "FALLBACK"
	}
	return "<unknown status>"
}

// Decision is the outcome of resolving one code point against one family.
// Decisions are ephemeral; they are produced per query and never stored.
type Decision struct {
	Status         Status
	Family         string
	CodePoint      rune
	FontName       string        // set for Matched
	Charset        props.Charset // set for Matched
	NeedConverted  bool
	ConverterClass string
	DefaultChar    rune // fallback character, set for Excluded and Fallback
	Reason         string
}

// ansiLimit is the last code point an ANSI_CHARSET entry is assumed to
// cover. Coverage is approximated from the declared charset, never from
// actual glyph data.
const ansiLimit = 0x00FF

// Resolve decides which font entry of a family renders a code point.
//
// Exclusion ranges take absolute precedence over any font match. After
// that, the family's entries are examined in ascending index order: an
// ANSI entry matches iff the code point is at most 0x00FF; a SYMBOL entry
// matches iff it carries NEED_CONVERTED and a registered converter class.
// The first matching entry wins; with several ANSI entries in a family the
// lowest index therefore takes the code point. If nothing matches (an
// unknown family never does), the decision falls back onto the global
// default character.
//
// When explain is set, the returned trace lists every entry examined and
// why it was skipped, in the exact order of examination. The model is
// never mutated; concurrent calls against one model are safe.
func Resolve(m *props.Model, family string, cp rune, explain bool) (Decision, []string) {
	var trace []string
	note := func(format string, v ...interface{}) {
		if explain {
			trace = append(trace, fmt.Sprintf(format, v...))
		}
	}
	for _, r := range m.Exclusions[family] {
		if r.Contains(cp) {
			tracer().Debugf("%s: U+%04X excluded by range %04X-%04X", family, cp, r.Start, r.End)
			note("U+%04X lies in exclusion range %04X-%04X", cp, r.Start, r.End)
			return Decision{
				Status:      Excluded,
				Family:      family,
				CodePoint:   cp,
				DefaultChar: m.Globals.DefaultChar,
				Reason:      "codepoint is in family exclusion range",
			}, trace
		}
	}
	for _, entry := range m.Families[family] {
		switch entry.Charset {
		case props.ANSICharset:
			note("check ANSI %s (index %d)", entry.FontName, entry.Index)
			if cp <= ansiLimit {
				return matched(family, cp, entry), trace
			}
			note("  skipped: U+%04X outside ANSI coverage 0000-%04X", cp, ansiLimit)
		case props.SymbolCharset:
			note("check SYMBOL %s (index %d)", entry.FontName, entry.Index)
			if entry.NeedConverted && entry.ConverterClass != "" {
				return matched(family, cp, entry), trace
			}
			note("  skipped: NEED_CONVERTED or converter class missing")
		}
	}
	tracer().Debugf("%s: no entry matches U+%04X, falling back", family, cp)
	return Decision{
		Status:      Fallback,
		Family:      family,
		CodePoint:   cp,
		DefaultChar: m.Globals.DefaultChar,
		Reason:      "no matching entry",
	}, trace
}

func matched(family string, cp rune, entry props.FontEntry) Decision {
	tracer().Debugf("%s: U+%04X matched by %s (index %d)", family, cp, entry.FontName, entry.Index)
	return Decision{
		Status:         Matched,
		Family:         family,
		CodePoint:      cp,
		FontName:       entry.FontName,
		Charset:        entry.Charset,
		NeedConverted:  entry.NeedConverted,
		ConverterClass: entry.ConverterClass,
	}
}
