package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

const maxCodePoint = 0x10FFFF

// ParseCodePoint parses a code-point literal as accepted on the query
// surface: '0x'- or 'U+'-prefixed hex, a bare hex-looking string (all hex
// digits, at most six characters, not a plain decimal number), or decimal.
func ParseCodePoint(s string) (rune, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty code point")
	}
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "u+"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case looksLikeBareHex(s):
		v, err = strconv.ParseUint(s, 16, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid code point literal: %s", s)
	}
	if v > maxCodePoint {
		return 0, fmt.Errorf("code point out of range 0..0x10FFFF: %#x", v)
	}
	return rune(v), nil
}

// looksLikeBareHex accepts literals like '03a9' that could not be decimal:
// short, all hex digits, with at least one of a-f.
func looksLikeBareHex(s string) bool {
	if len(s) > 6 {
		return false
	}
	letter := false
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
			letter = true
		default:
			return false
		}
	}
	return letter
}
