package props

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/fontprops/core"
)

// Key grammar. Families start with a letter; indices are decimal.
var (
	familyDefPattern   = regexp.MustCompile(`^([A-Za-z][\w-]*)\.([0-9]+)$`)
	fontCharsetPattern = regexp.MustCompile(`^fontcharset\.([A-Za-z][\w-]*)\.([0-9]+)$`)
	exclusionPattern   = regexp.MustCompile(`^exclusion\.([A-Za-z][\w-]*)\.([0-9]+)$`)
)

const maxCodePoint = 0x10FFFF

// ScannerOption configures Scan and LoadFile.
type ScannerOption func(*scanner)

type scanner struct {
	expandArith bool
}

// WithArithExpansion enables the arithmetic pre-expansion pass: each line
// is rewritten by ExpandArithmetic before classification.
func WithArithExpansion() ScannerOption {
	return func(sc *scanner) {
		sc.expandArith = true
	}
}

// LoadFile reads and classifies a font.properties file. An unreadable file
// is fatal and reported before any parsing.
func LoadFile(path string, opts ...ScannerOption) ([]Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read file: %s", path)
	}
	defer f.Close()
	return Scan(f, opts...)
}

// Scan reads all of r and classifies it line by line. The returned
// statement sequence has one entry per input line, in source order.
// Malformed lines classify as BadLine; Scan itself fails only on I/O.
func Scan(r io.Reader, opts ...ScannerOption) ([]Statement, error) {
	sc := scanner{}
	for _, opt := range opts {
		opt(&sc)
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read input")
	}
	lines := strings.Split(strings.ReplaceAll(string(input), "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] // trailing newline does not open a new line
	}
	stmts := make([]Statement, 0, len(lines))
	for i, text := range lines {
		if sc.expandArith {
			text = ExpandArithmetic(text)
		}
		stmts = append(stmts, ClassifyLine(i+1, text))
	}
	tracer().Debugf("scanned %d input lines", len(lines))
	return stmts, nil
}

// ClassifyLine classifies a single raw line and extracts its typed fields.
// It is a pure function of the line text and never fails: the absence of a
// match produces a BadLine statement. Recognized shapes, first match wins:
// blank, comment, default.char, inputtextcharset, fontcharset.*,
// exclusion.*, family font definition.
func ClassifyLine(lineno int, text string) Statement {
	base := stmtbase{lineno: lineno, raw: text}
	line := strings.TrimSpace(text)
	if line == "" {
		return Blank{base}
	}
	if strings.HasPrefix(line, "#") {
		return Comment{base}
	}
	eq := strings.Index(line, "=")
	if eq < 0 {
		return BadLine{base, fmt.Sprintf("Expected key=value, found: %s", line)}
	}
	key := strings.TrimSpace(line[:eq])
	value := strings.TrimSpace(line[eq+1:])
	base.key = key
	if key == "default.char" {
		return extractDefaultChar(base, value)
	}
	if key == "inputtextcharset" {
		return extractInputTextCharset(base, value)
	}
	if m := fontCharsetPattern.FindStringSubmatch(key); m != nil {
		return extractFontCharset(base, m, value)
	}
	if m := exclusionPattern.FindStringSubmatch(key); m != nil {
		return extractExclusion(base, m, value)
	}
	if m := familyDefPattern.FindStringSubmatch(key); m != nil {
		return extractFontDefinition(base, m, value)
	}
	return BadLine{base, fmt.Sprintf("Unknown key: %s", key)}
}

func extractDefaultChar(base stmtbase, value string) Statement {
	if value == "" {
		return BadLine{base, "default.char value is empty"}
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return BadLine{base, fmt.Sprintf("default.char must be an integer, got: %s", value)}
	}
	if v < 0 || v > maxCodePoint {
		return BadLine{base, fmt.Sprintf("default.char out of range 0..0x10FFFF: %d", v)}
	}
	return DefaultChar{base, rune(v)}
}

func extractInputTextCharset(base stmtbase, value string) Statement {
	cs := CharsetFromString(value)
	if cs == CharsetNone {
		return BadLine{base, fmt.Sprintf(
			"inputtextcharset must be one of ANSI_CHARSET|SYMBOL_CHARSET, got: %s", value)}
	}
	return InputTextCharset{base, cs}
}

func extractFontCharset(base stmtbase, m []string, value string) Statement {
	family, index, ok := familyAndIndex(m)
	if !ok {
		return BadLine{base, fmt.Sprintf("index out of range in key: %s", base.key)}
	}
	if value == "" {
		return BadLine{base, fmt.Sprintf("fontcharset.%s.%d has empty class name", family, index)}
	}
	return FontCharset{base, family, index, value}
}

func extractExclusion(base stmtbase, m []string, value string) Statement {
	family, index, ok := familyAndIndex(m)
	if !ok {
		return BadLine{base, fmt.Sprintf("index out of range in key: %s", base.key)}
	}
	dash := strings.Index(value, "-")
	if dash < 0 {
		return BadLine{base, fmt.Sprintf("exclusion range must be start-end hex, got: %s", value)}
	}
	start, err1 := strconv.ParseUint(strings.TrimSpace(value[:dash]), 16, 32)
	end, err2 := strconv.ParseUint(strings.TrimSpace(value[dash+1:]), 16, 32)
	if err1 != nil || err2 != nil {
		return BadLine{base, fmt.Sprintf("exclusion range parts must be hex, got: %s", value)}
	}
	if start > end || end > 0xFFFF {
		return BadLine{base, fmt.Sprintf(
			"exclusion range must satisfy 0x0000 <= start <= end <= 0xFFFF, got: %s", value)}
	}
	return Exclusion{base, family, index, rune(start), rune(end)}
}

func extractFontDefinition(base stmtbase, m []string, value string) Statement {
	family, index, ok := familyAndIndex(m)
	if !ok {
		return BadLine{base, fmt.Sprintf("index out of range in key: %s", base.key)}
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return BadLine{base, fmt.Sprintf(
			"FontDefinition requires at least FontName,CHARSET; got: %s", value)}
	}
	def := FontDefinition{
		stmtbase: base,
		Family:   family,
		Index:    index,
		FontName: parts[0],
		Charset:  CharsetFromString(parts[1]),
	}
	for _, flag := range parts[2:] {
		if flag == FlagNeedConverted {
			def.NeedConverted = true
			continue
		}
		def.Faults = append(def.Faults, fmt.Sprintf(
			"Unknown flag '%s' in %s.%d (allowed: %s)", flag, family, index, FlagNeedConverted))
	}
	if def.Charset == CharsetNone {
		def.Faults = append(def.Faults, fmt.Sprintf(
			"Unknown charset '%s' in %s.%d (allowed: ANSI_CHARSET|SYMBOL_CHARSET)",
			parts[1], family, index))
	}
	return def
}

func familyAndIndex(m []string) (string, int, bool) {
	index, err := strconv.Atoi(m[2])
	if err != nil {
		return m[1], 0, false // digit string too long for an int
	}
	return m[1], index, true
}
