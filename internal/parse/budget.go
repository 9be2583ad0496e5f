// Package parse extracts SNAP and WIC dollar amounts from free-form chat
// text. It is the boundary layer between user wording and the typed
// budgets the allocation core requires; the core never sees raw text.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Budgets holds the extracted benefit amounts. Zero means the program was
// not mentioned.
type Budgets struct {
	SNAP float64
	WIC  float64
}

// Requested reports whether at least one program amount was found.
func (b Budgets) Requested() bool {
	return b.SNAP > 0 || b.WIC > 0
}

// Pattern order matters: the most explicit forms ("SNAP $30.00") are
// tried before the loose fallbacks ("snap ... 30").
var snapPatterns = compilePatterns("SNAP")
var wicPatterns = compilePatterns("WIC")

func compilePatterns(program string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(program + `\s*\$?(\d+(?:\.\d{2})?)`),
		regexp.MustCompile(program + `[:\s]+\$?(\d+(?:\.\d{2})?)`),
		regexp.MustCompile(`\$(\d+(?:\.\d{2})?)\s+` + program),
		regexp.MustCompile(`(\d+)\s*DOLLARS?\s*` + program),
		regexp.MustCompile(`(\d+)\s*` + program),
		regexp.MustCompile(program + `.*?(\d+)`),
	}
}

// BudgetsFromText scans text for SNAP and WIC amounts. Matching is
// case-insensitive; the first matching pattern per program wins.
func BudgetsFromText(text string) Budgets {
	upper := strings.ToUpper(text)
	return Budgets{
		SNAP: matchAmount(upper, snapPatterns),
		WIC:  matchAmount(upper, wicPatterns),
	}
}

func matchAmount(text string, patterns []*regexp.Regexp) float64 {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		amount, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return amount
	}
	return 0
}
