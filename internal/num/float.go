package num

import (
	"math"
	"strconv"
)

// ParseFloat parses a finite decimal float lexical value, with optional sign,
// fraction and exponent. INF and NaN spellings are rejected.
func ParseFloat(s string) (float64, *ParseError) {
	s = TrimXMLWhitespace(s)
	if s == "" {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	if !isFloatLexical(s) {
		return 0, &ParseError{Kind: ParseBadChar}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Kind: ParseOverflow}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &ParseError{Kind: ParseNotFinite}
	}
	return f, nil
}

func isFloatLexical(value string) bool {
	if len(value) == 0 {
		return false
	}
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	startDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		startDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if startDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if startDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
			if i == len(value) {
				return false
			}
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}
