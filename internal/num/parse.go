package num

import "strings"

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isXMLWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// TrimXMLWhitespace removes leading and trailing XML whitespace (space, tab, CR, LF).
func TrimXMLWhitespace(s string) string {
	return strings.TrimFunc(s, isXMLWhitespace)
}
