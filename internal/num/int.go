package num

import "math"

// ParseInt parses a decimal integer lexical value into an int64.
// An optional leading sign is accepted; surrounding XML whitespace is ignored.
func ParseInt(s string) (int64, *ParseError) {
	s = TrimXMLWhitespace(s)
	if s == "" {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i >= len(s) {
		return 0, &ParseError{Kind: ParseNoDigits}
	}

	// accumulate as a negative magnitude so MinInt64 is representable
	var n int64
	for ; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			return 0, &ParseError{Kind: ParseBadChar}
		}
		d := int64(c - '0')
		if n < (math.MinInt64+d)/10 {
			return 0, &ParseError{Kind: ParseOverflow}
		}
		n = n*10 - d
	}
	if neg {
		return n, nil
	}
	if n == math.MinInt64 {
		return 0, &ParseError{Kind: ParseOverflow}
	}
	return -n, nil
}
