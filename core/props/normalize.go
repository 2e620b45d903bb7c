package props

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fontprops/core"
)

// FontEntry is one concrete font within a family, in canonical form.
type FontEntry struct {
	Index          int
	FontName       string
	Charset        Charset
	NeedConverted  bool
	ConverterClass string // set only for SYMBOL_CHARSET entries; "" = none registered
}

// CharRange is an inclusive code-point interval.
type CharRange struct {
	Start rune
	End   rune
}

// Contains reports whether cp lies within the range, both ends inclusive.
func (cr CharRange) Contains(cp rune) bool {
	return cr.Start <= cp && cp <= cr.End
}

// Globals are the two required file-wide settings.
type Globals struct {
	DefaultChar      rune
	InputTextCharset Charset
}

// Model is the canonical form of a validated font.properties input.
// Family entries are ordered ascending by index; exclusion ranges are
// deduplicated and sorted by (start, end); families without exclusions
// are absent from Exclusions. A model is immutable once built and may be
// queried concurrently without synchronization.
type Model struct {
	Families   map[string][]FontEntry
	Exclusions map[string][]CharRange
	Globals    Globals
}

// FamilyNames returns all family names with font entries, sorted.
func (m *Model) FamilyNames() []string {
	names := make([]string, 0, len(m.Families))
	for name := range m.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExclusionFamilies returns all family names with exclusion ranges, sorted.
func (m *Model) ExclusionFamilies() []string {
	names := make([]string, 0, len(m.Exclusions))
	for name := range m.Exclusions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize builds the canonical model from a validation report. It must
// only be called on a report without errors and will otherwise refuse
// with an EINVALID error.
func Normalize(r *Report) (*Model, error) {
	if r == nil {
		return nil, core.Error(core.EINTERNAL, "no validation report")
	}
	if r.Fatal() {
		return nil, core.Error(core.EINVALID,
			"refusing to normalize: input has %d validation error(s)", len(r.Errors))
	}
	model := &Model{
		Families:   make(map[string][]FontEntry),
		Exclusions: make(map[string][]CharRange),
		Globals: Globals{
			DefaultChar:      r.defaultChar,
			InputTextCharset: r.inputCharset,
		},
	}
	for _, family := range r.families {
		indices := dedupSorted(r.famIndices[family])
		entries := make([]FontEntry, 0, len(indices))
		for _, idx := range indices {
			def := r.defs[Slot{family, idx}]
			entry := FontEntry{
				Index:         def.Index,
				FontName:      def.FontName,
				Charset:       def.Charset,
				NeedConverted: def.NeedConverted,
			}
			if def.Charset == SymbolCharset {
				// attach only for symbol slots; "" reflects 'no entry found'
				if fc, ok := r.charsets[Slot{family, idx}]; ok {
					entry.ConverterClass = fc.Class
				}
			}
			entries = append(entries, entry)
		}
		model.Families[family] = entries
	}
	for _, family := range r.exclOrder {
		set := treeset.NewWith(compareRanges)
		for _, excl := range r.exclusions[family] {
			set.Add(CharRange{excl.Start, excl.End})
		}
		ranges := make([]CharRange, 0, set.Size())
		for _, v := range set.Values() {
			ranges = append(ranges, v.(CharRange))
		}
		model.Exclusions[family] = ranges
	}
	tracer().Debugf("normalized model with %d families", len(model.Families))
	return model, nil
}

// compareRanges orders exclusion ranges by (start, end).
func compareRanges(a, b interface{}) int {
	ra, rb := a.(CharRange), b.(CharRange)
	if ra.Start != rb.Start {
		return int(ra.Start) - int(rb.Start)
	}
	return int(ra.End) - int(rb.End)
}
