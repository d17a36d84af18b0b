package printer

import (
	"strings"
	"unicode/utf16"
)

const hexDigits = "0123456789abcdef"

// EscapeString escapes arbitrary source text for embedding in diagnostic
// string literals. Tab, newline, vertical tab, form feed, carriage return,
// double quote, dollar sign, and backslash map to their two-character escape
// sequences; every other code unit outside printable ASCII [32,126] becomes
// a zero-padded 4-hex-digit "\uXXXX" escape. Escaping works over UTF-16 code
// units, so a supplementary-plane rune produces its two surrogate escapes.
//
// The common case of clean input returns the input string itself: no output
// buffer exists until the first code unit that needs escaping, at which
// point the clean prefix is copied once.
func EscapeString(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		if c < 32 || c > 126 || c == '"' || c == '$' || c == '\\' {
			break
		}
		i++
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		escapeRune(&b, r)
	}
	return b.String()
}

func escapeRune(b *strings.Builder, r rune) {
	switch r {
	case '\t':
		b.WriteString(`\t`)
	case '\n':
		b.WriteString(`\n`)
	case '\v':
		b.WriteString(`\v`)
	case '\f':
		b.WriteString(`\f`)
	case '\r':
		b.WriteString(`\r`)
	case '"':
		b.WriteString(`\"`)
	case '$':
		b.WriteString(`\$`)
	case '\\':
		b.WriteString(`\\`)
	default:
		if r >= 32 && r <= 126 {
			b.WriteByte(byte(r))
		} else if r <= 0xffff {
			writeUnicodeEscape(b, uint16(r))
		} else {
			r1, r2 := utf16.EncodeRune(r)
			writeUnicodeEscape(b, uint16(r1))
			writeUnicodeEscape(b, uint16(r2))
		}
	}
}

func writeUnicodeEscape(b *strings.Builder, v uint16) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[v>>12&0xf])
	b.WriteByte(hexDigits[v>>8&0xf])
	b.WriteByte(hexDigits[v>>4&0xf])
	b.WriteByte(hexDigits[v&0xf])
}
