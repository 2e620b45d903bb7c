package props

import (
	"fmt"
	"sort"
	"strings"
)

// Slot identifies a font-definition position within a family.
type Slot struct {
	Family string
	Index  int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s.%d", s.Family, s.Index)
}

// Report is the outcome of validating a statement sequence. Errors are
// fatal: a report with errors refuses normalization. Warnings are
// advisory and never block. Both lists preserve detection order.
//
// The report also carries the indexed statement tables which Normalize
// consumes, so validation happens exactly once per input.
type Report struct {
	Errors   []string
	Warnings []string

	defs         map[Slot]FontDefinition
	defOrder     []Slot
	charsets     map[Slot]FontCharset
	charsetOrder []Slot
	exclusions   map[string][]Exclusion
	exclOrder    []string
	families     []string // first-appearance order
	famIndices   map[string][]int

	defaultChar    rune
	hasDefaultChar bool
	inputCharset   Charset
}

// Fatal reports whether any validation error was found.
func (r *Report) Fatal() bool {
	return len(r.Errors) > 0
}

func (r *Report) errf(lineno int, format string, v ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf("Line %d: ", lineno)+fmt.Sprintf(format, v...))
}

func (r *Report) globalErrf(format string, v ...interface{}) {
	r.Errors = append(r.Errors, "Global: "+fmt.Sprintf(format, v...))
}

func (r *Report) rawErrf(format string, v ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, v...))
}

func (r *Report) warnf(lineno int, format string, v ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf("Line %d: ", lineno)+fmt.Sprintf(format, v...))
}

// Validate runs all semantic checks over an ordered statement sequence.
// Checks are independent and never short-circuit, so a single pass
// surfaces every problem in the input.
func Validate(stmts []Statement) *Report {
	r := &Report{
		defs:       make(map[Slot]FontDefinition),
		charsets:   make(map[Slot]FontCharset),
		exclusions: make(map[string][]Exclusion),
		famIndices: make(map[string][]int),
	}
	seen := make(map[string]bool)
	for _, s := range stmts {
		if key := s.Key(); key != "" {
			// exclusion keys may repeat, every other key is unique
			if seen[key] && !strings.HasPrefix(key, "exclusion.") {
				r.errf(s.Pos(), "Duplicate key: %s", key)
			}
			seen[key] = true
		}
		switch stmt := s.(type) {
		case Blank, Comment:
		case BadLine:
			r.errf(stmt.Pos(), "%s", stmt.Reason)
		case DefaultChar:
			r.defaultChar = stmt.Value
			r.hasDefaultChar = true
		case InputTextCharset:
			r.inputCharset = stmt.Charset
		case FontCharset:
			slot := Slot{stmt.Family, stmt.Index}
			if _, ok := r.charsets[slot]; !ok {
				r.charsetOrder = append(r.charsetOrder, slot)
			}
			r.charsets[slot] = stmt
		case Exclusion:
			if _, ok := r.exclusions[stmt.Family]; !ok {
				r.exclOrder = append(r.exclOrder, stmt.Family)
			}
			r.exclusions[stmt.Family] = append(r.exclusions[stmt.Family], stmt)
		case FontDefinition:
			for _, fault := range stmt.Faults {
				r.errf(stmt.Pos(), "%s", fault)
			}
			slot := Slot{stmt.Family, stmt.Index}
			if prev, ok := r.defs[slot]; ok {
				r.errf(stmt.Pos(), "Duplicate FontDefinition for %s (previous at line %d)",
					slot, prev.Pos())
				break
			}
			r.defs[slot] = stmt
			r.defOrder = append(r.defOrder, slot)
			if _, ok := r.famIndices[stmt.Family]; !ok {
				r.families = append(r.families, stmt.Family)
			}
			r.famIndices[stmt.Family] = append(r.famIndices[stmt.Family], stmt.Index)
		default:
			tracer().Errorf("unhandled statement type %T at line %d", s, s.Pos())
		}
	}
	r.checkGlobals()
	r.checkContiguity()
	r.checkConverters()
	tracer().Debugf("validation found %d error(s), %d warning(s)", len(r.Errors), len(r.Warnings))
	return r
}

// checkGlobals requires default.char and inputtextcharset to be present.
// Their absence has no line to point at.
func (r *Report) checkGlobals() {
	if !r.hasDefaultChar {
		r.globalErrf("default.char is missing")
	}
	if r.inputCharset == CharsetNone {
		r.globalErrf("inputtextcharset is missing")
	}
}

// checkContiguity requires every family's index set to be dense and to
// start at 0.
func (r *Report) checkContiguity() {
	for _, family := range r.families {
		indices := dedupSorted(r.famIndices[family])
		if indices[0] != 0 {
			r.rawErrf("Family '%s': indices must start at 0, found %d", family, indices[0])
		}
		var missing []int
		next := indices[0]
		for _, idx := range indices {
			for ; next < idx; next++ {
				missing = append(missing, next)
			}
			next = idx + 1
		}
		if len(missing) > 0 {
			r.rawErrf("Family '%s': indices not contiguous, missing %v", family, missing)
		}
	}
}

// checkConverters couples NEED_CONVERTED flags with charsets and
// fontcharset registrations.
func (r *Report) checkConverters() {
	for _, slot := range r.defOrder {
		def := r.defs[slot]
		if def.NeedConverted && def.Charset != SymbolCharset {
			r.errf(def.Pos(), "NEED_CONVERTED used with non-symbol charset in %s", slot)
		}
		if def.Charset == SymbolCharset && def.NeedConverted {
			if _, ok := r.charsets[slot]; !ok {
				r.errf(def.Pos(), "Missing fontcharset.%s for SYMBOL_CHARSET with NEED_CONVERTED", slot)
			}
		}
		if fc, ok := r.charsets[slot]; ok && def.Charset == SymbolCharset && !def.NeedConverted {
			// converter class registered but unused
			r.warnf(fc.Pos(), "fontcharset.%s present but NEED_CONVERTED not set in %s", slot, slot)
		}
	}
	for _, slot := range r.charsetOrder {
		if _, ok := r.defs[slot]; !ok {
			fc := r.charsets[slot]
			r.warnf(fc.Pos(), "fontcharset.%s has no matching FontDefinition; it will be ignored", slot)
		}
	}
}

func dedupSorted(indices []int) []int {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, idx := range sorted {
		if i == 0 || idx != sorted[i-1] {
			out = append(out, idx)
		}
	}
	return out
}
