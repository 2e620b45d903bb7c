package props

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Arithmetic pre-expansion is a cosmetic convenience: parenthesized
// sub-expressions anywhere in a line, and right-hand values consisting
// entirely of arithmetic, are replaced by their evaluated result before
// the line ever reaches the classifier. The accepted grammar is strictly
// digits, '+', '-', '*', '/', '(', ')', '.' and whitespace; anything else
// is left untouched.

var (
	parenExprPattern   = regexp.MustCompile(`\(([0-9+\-*/.()\s]+)\)`)
	pureExprPattern    = regexp.MustCompile(`^[0-9+\-*/.()\s]+$`)
	anyOperatorPattern = regexp.MustCompile(`[+\-*/]`)
)

// ExpandArithmetic rewrites arithmetic found in a raw line. Expressions
// that do not evaluate (division by zero, unbalanced parentheses) stay as
// they are; extraction will then diagnose them like any other bad value.
// Blank and comment lines pass through untouched, as do the values of
// exclusion statements: a hex range like 41-50 must not read as a
// subtraction.
func ExpandArithmetic(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line
	}
	line = parenExprPattern.ReplaceAllStringFunc(line, func(m string) string {
		if v, err := evalExpr(m[1 : len(m)-1]); err == nil {
			return formatNumber(v)
		}
		return m
	})
	if eq := strings.Index(line, "="); eq >= 0 {
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if !exclusionPattern.MatchString(key) &&
			anyOperatorPattern.MatchString(value) && pureExprPattern.MatchString(value) {
			if v, err := evalExpr(value); err == nil {
				line = line[:eq+1] + formatNumber(v)
			}
		}
	}
	return line
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// --- Expression evaluation -------------------------------------------------

// evalExpr evaluates the restricted arithmetic grammar
//
//    expr   ::= term  (('+'|'-') term)*
//    term   ::= factor (('*'|'/') factor)*
//    factor ::= number | '(' expr ')' | ('+'|'-') factor
//
// by recursive descent over a rune slice.
func evalExpr(s string) (float64, error) {
	p := exprParser{input: strings.TrimSpace(s)}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, errors.New("trailing characters in expression")
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			w, err := p.term()
			if err != nil {
				return 0, err
			}
			v += w
		case '-':
			p.pos++
			w, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= w
		default:
			return v, nil
		}
	}
}

func (p *exprParser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			w, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= w
		case '/':
			p.pos++
			w, err := p.factor()
			if err != nil {
				return 0, err
			}
			if w == 0 {
				return 0, errors.New("division by zero")
			}
			v /= w
		default:
			return v, nil
		}
	}
}

func (p *exprParser) factor() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c == '+':
		p.pos++
		return p.factor()
	case c == '-':
		p.pos++
		v, err := p.factor()
		return -v, err
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	}
	return 0, errors.New("expected number or parenthesized expression")
}

func (p *exprParser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	return strconv.ParseFloat(p.input[start:p.pos], 64)
}
