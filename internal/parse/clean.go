package parse

import (
	"regexp"
	"strings"
)

var (
	romanNumeralPrefix = regexp.MustCompile(`^[IVXLC]+\.\s*`)

	// Dangling parenthetical fragments cut off by an earlier boundary
	// rule, e.g. a trailing "(Vol" or "(3rd".
	danglingParenPattern = regexp.MustCompile(`(?i)\s*\((?:Vol|No|pp|Chapter)\.?\s*$`)
	danglingEditionRe    = regexp.MustCompile(`(?i)\s*\(\d+(?:st|nd|rd|th)?\s*$`)
	parenFragmentBody    = regexp.MustCompile(`(?i)^(?:Vol|No|pp|ed|Chapter|\d+)\.?\s*$`)

	// Line-break hyphenation left by PDF extraction: "word- word".
	hyphenBreakPattern = regexp.MustCompile(`(\w)-\s+(\w)`)
)

const titleQuoteCutset = "\"'" + "“”‘’"

// cleanTitle trims punctuation and quotes from an extracted title, strips
// leading roman-numeral article markers, removes dangling unclosed
// parenthetical fragments, and repairs line-break hyphenation.
func cleanTitle(title string) string {
	title = strings.Trim(strings.TrimSpace(title), ".,;:")
	title = strings.Join(strings.Fields(title), " ")
	title = romanNumeralPrefix.ReplaceAllString(title, "")
	title = strings.Trim(title, titleQuoteCutset)
	title = danglingParenPattern.ReplaceAllString(title, "")
	title = danglingEditionRe.ReplaceAllString(title, "")

	// An unclosed parenthesis holding only volume/edition debris gets cut
	// at the opening paren; a meaningful parenthetical is left alone.
	if strings.Contains(title, "(") && !strings.Contains(title, ")") {
		if pos := strings.LastIndexByte(title, '('); pos >= 0 {
			if parenFragmentBody.MatchString(title[pos+1:]) {
				title = strings.TrimSpace(title[:pos])
			}
		}
	}

	title = strings.Trim(strings.TrimSpace(title), ".,;:")
	title = hyphenBreakPattern.ReplaceAllString(title, "${1}${2}")
	return title
}
