// Package finvalue turns the textual amounts found in financial statements
// ("$43,079", "($34,984)", "12.5%") into numbers.
package finvalue

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	decimal          = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	currencyStripper = strings.NewReplacer("$", "", ",", "", "(", "", ")", "", `"`, "")
	percentStripper  = strings.NewReplacer("%", "", ",", "")
)

// Parse returns the numeric value of raw, or nil when raw is blank, a lone
// dash or anything else that is not unambiguously a number.
//
// Percentages keep their scale: "12.5%" is 12.5. Amounts wrapped in
// parentheses are negative.
func Parse(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if isBlank(s) {
		return nil
	}

	s = strings.TrimSpace(trimQuotes(s))
	if isBlank(s) {
		return nil
	}

	if strings.Contains(s, "%") {
		return parseDecimal(strings.TrimSpace(percentStripper.Replace(s)))
	}

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")
	cleaned := strings.TrimSpace(currencyStripper.Replace(s))
	if isBlank(cleaned) {
		return nil
	}

	v := parseDecimal(cleaned)
	if v != nil && negative {
		*v = -*v
	}
	return v
}

func isBlank(s string) bool {
	return s == "" || s == "-"
}

func isQuote(r rune) bool {
	switch r {
	case '"', '\'', '“', '”', '‘', '’':
		return true
	}
	return false
}

// trimQuotes removes at most one quote character from each end.
func trimQuotes(s string) string {
	if r, size := utf8.DecodeRuneInString(s); isQuote(r) {
		s = s[size:]
	}
	if r, size := utf8.DecodeLastRuneInString(s); isQuote(r) {
		s = s[:len(s)-size]
	}
	return s
}

func parseDecimal(s string) *float64 {
	if !decimal.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
