package parse

import "regexp"

// TwoDigitYearPivot is the cutoff for expanding 2-digit years: values above
// it become 19xx, values at or below become 20xx. A heuristic tuned on the
// observed corpus; there is no universally correct cutoff.
const TwoDigitYearPivot = 50

// yearSource selects which input string a year rule inspects.
type yearSource int

const (
	fromText yearSource = iota
	fromKey
)

// yearRule is one stage of the year cascade. Rules run in order; the first
// match wins and later stages never overwrite it.
type yearRule struct {
	name    string
	source  yearSource
	pattern *regexp.Regexp
	expand  bool // apply 2-digit pivot expansion to the captured group
}

// yearRules is evaluated top to bottom. A 4-digit year in the entry text
// outranks the apostrophe year in the citation key: keys abbreviate and the
// pivot expansion can land in the wrong century, so the key is a fallback
// hint only. Values outside any plausible range are not filtered: the
// cascade trusts pattern structure over value sanity.
var yearRules = []yearRule{
	// Parenthesized year in the entry text: (1948). or (2008, March).
	{name: "text-paren", source: fromText, pattern: regexp.MustCompile(`\((\d{4})[,)]`)},
	// Standalone 4-digit year anywhere in the text: ", 1936." or
	// "(March 14, 2019)".
	{name: "text-standalone", source: fromText, pattern: regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)},
	// Apostrophe year inside the citation key: '79, '08, '2019.
	// Straight and both curly apostrophe variants occur in the wild.
	{name: "key-apostrophe", source: fromKey, pattern: regexp.MustCompile(`['‘’](\d{2,4})`), expand: true},
}

// ExtractYear derives a normalized 4-digit year from a citation key and
// entry text. Returns the empty string when no rule matches.
func ExtractYear(citationKey, text string) string {
	for _, rule := range yearRules {
		input := text
		if rule.source == fromKey {
			input = citationKey
		}
		m := rule.pattern.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		year := m[1]
		if rule.expand && len(year) == 2 {
			year = expandTwoDigitYear(year)
		}
		return year
	}
	return ""
}

// expandTwoDigitYear maps a 2-digit year to four digits using the pivot:
// "79" → "1979", "08" → "2008".
func expandTwoDigitYear(yy string) string {
	n := int(yy[0]-'0')*10 + int(yy[1]-'0')
	if n > TwoDigitYearPivot {
		return "19" + yy
	}
	return "20" + yy
}
