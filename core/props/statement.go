package props

// Charset is the declared character-encoding category of a font entry.
// Only ANSI_CHARSET and SYMBOL_CHARSET are recognized.
type Charset int

const (
	CharsetNone Charset = iota // not recognized
	ANSICharset
	SymbolCharset
)

func (cs Charset) String() string {
	switch cs {
	case ANSICharset:
		return "ANSI_CHARSET"
	case SymbolCharset:
		return "SYMBOL_CHARSET"
	}
	return "<unknown charset>"
}

// CharsetFromString returns the charset named by s, or CharsetNone.
func CharsetFromString(s string) Charset {
	switch s {
	case "ANSI_CHARSET":
		return ANSICharset
	case "SYMBOL_CHARSET":
		return SymbolCharset
	}
	return CharsetNone
}

// FlagNeedConverted is the only recognized font-definition flag. It marks
// a symbol font as requiring code-point conversion through a converter
// class registered with a fontcharset statement.
const FlagNeedConverted = "NEED_CONVERTED"

// Statement is one classified line of a font.properties source.
// Concrete types are Blank, Comment, DefaultChar, InputTextCharset,
// FontCharset, Exclusion, FontDefinition and BadLine. Consumers are
// expected to type-switch exhaustively over these.
type Statement interface {
	Pos() int       // 1-based source line number
	Source() string // raw line text, for diagnostics
	Key() string    // left-hand side of the statement, "" if none
}

type stmtbase struct {
	lineno int
	raw    string
	key    string
}

func (s stmtbase) Pos() int       { return s.lineno }
func (s stmtbase) Source() string { return s.raw }
func (s stmtbase) Key() string    { return s.key }

// Blank is a whitespace-only line.
type Blank struct {
	stmtbase
}

// Comment is a line starting with '#'.
type Comment struct {
	stmtbase
}

// DefaultChar is a 'default.char=<decimal>' statement. Value is the code
// point substituted whenever resolution falls back.
type DefaultChar struct {
	stmtbase
	Value rune
}

// InputTextCharset is an 'inputtextcharset=<charset>' statement.
type InputTextCharset struct {
	stmtbase
	Charset Charset
}

// FontCharset is a 'fontcharset.<family>.<index>=<class>' statement,
// registering a converter class for a font slot.
type FontCharset struct {
	stmtbase
	Family string
	Index  int
	Class  string
}

// Exclusion is an 'exclusion.<family>.<index>=<hex>-<hex>' statement.
// Start and End are inclusive and satisfy 0 <= Start <= End <= 0xFFFF.
// Unlike other keys, exclusion keys may repeat.
type Exclusion struct {
	stmtbase
	Family string
	Index  int
	Start  rune
	End    rune
}

// FontDefinition is a '<family>.<index>=<font>,<charset>[,<flag>…]'
// statement. Extraction is best-effort: unknown flags or an unknown
// charset do not abort it, but each violation is recorded in Faults for
// the validator to surface.
type FontDefinition struct {
	stmtbase
	Family        string
	Index         int
	FontName      string
	Charset       Charset
	NeedConverted bool
	Faults        []string
}

// BadLine is a line that matches no recognized statement shape, or one
// whose right-hand side violates its shape's constraints.
type BadLine struct {
	stmtbase
	Reason string
}
