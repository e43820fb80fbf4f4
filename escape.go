package jzon

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// escapable lists the bytes Escape rewrites; escapeTo holds the letter
// that follows the backslash for each of them.
const (
	escapable = "\\/\"\n\t\b\f\r"
	escapeTo  = "\\/\"ntbfr"
)

// Escape replaces backslash, slash, double quote, newline, tab, backspace,
// form feed and carriage return with their two byte escape sequences.
// Every other byte is copied unchanged.
func Escape(s string) string {
	if !shouldEscape(s) {
		return s
	}
	return string(escapeString(make([]byte, 0, len(s)+8), s))
}

// Unescape is the inverse of Escape. A backslash that doesn't start one of
// the eight known pairs stays in the output as is; \uXXXX is not decoded.
func Unescape(s string) string {
	return unescapeStr(s, false)
}

// UnescapeUnicode works like Unescape but also decodes \uXXXX sequences,
// including UTF-16 surrogate pairs.
func UnescapeUnicode(s string) string {
	return unescapeStr(s, true)
}

func shouldEscape(s string) bool {
	return strings.IndexAny(s, escapable) >= 0
}

func escapeString(out []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		x := strings.IndexByte(escapable, s[i])
		if x < 0 {
			continue
		}
		out = append(out, s[start:i]...)
		out = append(out, '\\', escapeTo[x])
		start = i + 1
	}
	return append(out, s[start:]...)
}

// unescapeStr is derived from the fastjson unescaper
func unescapeStr(s string, unicode bool) string {
	n := strings.IndexByte(s, '\\')
	if n < 0 {
		return s
	}

	b := make([]byte, 0, len(s))
	b = append(b, s[:n]...)
	s = s[n+1:]
	for {
		if len(s) == 0 {
			// lone backslash at the end
			b = append(b, '\\')
			break
		}
		ch := s[0]
		s = s[1:]
		switch ch {
		case '"', '\\', '/':
			b = append(b, ch)
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			if !unicode {
				b = append(b, '\\', 'u')
				break
			}
			b, s = unescapeUnicode(b, s)
		default:
			// not a known pair, keep the backslash and look at ch again
			b = append(b, '\\')
			s = string(ch) + s
		}

		n = strings.IndexByte(s, '\\')
		if n < 0 {
			b = append(b, s...)
			break
		}
		b = append(b, s[:n]...)
		s = s[n+1:]
	}
	return string(b)
}

// unescapeUnicode decodes the hex digits following \u. On malformed input
// the sequence is kept verbatim.
func unescapeUnicode(b []byte, s string) ([]byte, string) {
	if len(s) < 4 {
		return append(b, "\\u"...), s
	}
	xs := s[:4]
	x, err := strconv.ParseUint(xs, 16, 16)
	if err != nil {
		return append(b, "\\u"...), s
	}
	s = s[4:]
	if !utf16.IsSurrogate(rune(x)) {
		return append(b, string(rune(x))...), s
	}

	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		b = append(b, "\\u"...)
		return append(b, xs...), s
	}
	x1, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		b = append(b, "\\u"...)
		return append(b, xs...), s
	}
	r := utf16.DecodeRune(rune(x), rune(x1))
	return append(b, string(r)...), s[6:]
}
