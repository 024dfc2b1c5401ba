package helpers

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt reads an integer the lenient way URL ids are treated by the API:
// leading whitespace and an optional sign are skipped, then the leading run of digits is
// parsed and anything after it is ignored ("12abc" is 12). A 0x or 0X prefix switches to
// hexadecimal ("0x1f" is 31). It reports false when there are no digits or the value does
// not fit in an int64.
func ParseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
