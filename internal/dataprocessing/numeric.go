package dataprocessing

import (
	"strconv"
	"strings"

	"cellwatch/pkg/contracts/domain"
)

// ParseMeasure converts a report field into a number. It accepts a decimal
// comma, ignores trailing text after the numeric prefix ("-3,50 dB" is -3.5)
// and returns domain.Missing() for anything without a numeric prefix.
func ParseMeasure(s string) domain.Measure {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	lit := leadingNumber(s)
	if lit == "" {
		return domain.Missing()
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// overflow still yields ±Inf with an error, keep it comparable
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return domain.Measure(f)
		}
		return domain.Missing()
	}
	return domain.Measure(f)
}

// leadingNumber returns the longest prefix of s that is a decimal float
// literal: [+-] digits [. digits] [(e|E) [+-] digits].
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if frac := j - (i + 1); frac > 0 || digits > 0 {
			digits += frac
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
