package parse

import (
	"regexp"
	"strings"
)

// Title extraction is a cascade: no single signal reliably marks the end of
// a title across citation styles, so boundary rules run in priority order
// and the first successful one wins.

var (
	// titleYearPattern locates the parenthesized year (optionally a full
	// date) after which the title search begins.
	titleYearPattern = regexp.MustCompile(`\((?:[A-Za-z]+\s+\d+,\s*)?(\d{4})(?:,\s*[A-Za-z]+)?\)[.,]?\s*`)

	leadingPunctPattern = regexp.MustCompile(`^[,.\s]+`)

	translatedByLocator = regexp.MustCompile(`(?i)translated\s+by\s+[^(]+\(\d{4}\)`)
)

// commaJournalPatterns catch the unusual "Title, Journal of ..." format
// where a comma rather than a period separates title and venue.
var commaJournalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i),\s*Journal\s+of`),
	regexp.MustCompile(`(?i),\s*Annals\s+of`),
	regexp.MustCompile(`(?i),\s*Transactions\s+on`),
	regexp.MustCompile(`(?i),\s*Proceedings\s+of`),
	regexp.MustCompile(`(?i),\s*IEEE\s+`),
	regexp.MustCompile(`(?i),\s*ACM\s+`),
	regexp.MustCompile(`(?i),\s*Journal\s+für`),
}

// journalStartPatterns recognize a sentence that opens like a venue name,
// used by the 3-part period-split heuristic.
var journalStartPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:Annals|Journal|Proceedings|IEEE|ACM|SIAM|The\s+[A-Z]|[A-Z][a-z]+\s+Journal)`),
	regexp.MustCompile(`(?i)^(?:Transactions|Communications|Reviews?|Bulletin|Archives?)`),
	regexp.MustCompile(`^\d+\s*[(:]`),
}

// venueMarkers list the lexical patterns that, found right after a period,
// mark the boundary between a title and its bibliographic metadata:
// conference acronyms, journal prefixes, publishers, locations, thesis and
// pagination markers. Process-wide read-only configuration.
var venueMarkers = []string{
	`(?:In\s+)?Proceedings`,
	`(?:In\s+)?Conference`,
	`(?:In\s+)?Workshop`,
	`(?:In\s+)?Advances\s+in`,
	`(?:In\s+)?International`,
	`(?:In\s+)?(?:\d{4}\s+)?IEEE`,
	`(?:In\s+)?ACM`,
	`(?:In\s+)?SIAM`,
	`(?:In\s+)?NIPS`,
	`(?:In\s+)?NeurIPS`,
	`(?:In\s+)?ICML`,
	`(?:In\s+)?ICLR`,
	`(?:In\s+)?CVPR`,
	`(?:In\s+)?ICCV`,
	`(?:In\s+)?ECCV`,
	`(?:In\s+)?AAAI`,
	`(?:In\s+)?IJCAI`,
	`(?:In\s+)?KDD`,
	`(?:In\s+)?WWW\s+\d`,
	`(?:In\s+)?SIGMOD`,
	`(?:In\s+)?VLDB`,
	`(?:In\s+)?(?:The\s+)?(?:\w+\s+)+Symposium`,
	`(?:In\s+)?The\s+(?:\w+\s+)+(?:for|on)\s+`,
	`In\s+[A-Z][a-z]+\s+(?:and|&)\s+`,
	`In\s+[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s|:)`,
	`In\s+[A-Z][a-z]+\s+Algebra`,
	`"\s*In\s+`,
	`arXiv`,
	`Nature\b`,
	`Science\b`,
	`PNAS`,
	`PLoS`,
	`JMLR`,
	`Journal\s+of`,
	`Annals\s+of`,
	`Transactions\s+on`,
	`Communications\s+of`,
	`Proceedings\s+of`,
	`Reviews?\s+of`,
	`Bulletin\s+of`,
	`Archives?\s+of`,
	`Reports?\s+of`,
	`The\s+[A-Z][a-z]+\s+Journal`,
	`[A-Z][a-z]+\s+Journal`,
	`British\s+`,
	`American\s+`,
	`European\s+`,
	`International\s+Journal`,
	`Biometrika`,
	`Psycholog`,
	`Statistical`,
	`Springer`,
	`Cambridge`,
	`Oxford`,
	`MIT\s+[Pp]ress`,
	`O'Reilly`,
	`Wiley`,
	`Elsevier`,
	`McGraw`,
	`Prentice`,
	`Academic\s+Press`,
	`Morgan\s+Kaufmann`,
	`Addison.Wesley`,
	`CRC\s+[Pp]ress`,
	`Pearson`,
	`Hachette`,
	`Manning`,
	`Packt`,
	`Graphics\s+[Pp]ress`,
	`(?:New\s+York|Boston|London|Berlin|San\s+Francisco|Cambridge,?\s+MA|Redmond|Cheshire)`,
	`Ph\.?D\.?\s+[Tt]hesis`,
	`Master'?s?\s+[Tt]hesis`,
	`Technical\s+[Rr]eport`,
	`Working\s+[Pp]aper`,
	`Paper\s+[A-Z]?-?\d`,
	`Chapter\s+\d`,
	`pp\.\s*\d`,
	`\d+\s*\(\d+\)`,
	`Vol\.\s*\d`,
	`Volume\s+\d`,
	`[Ee]dited\s+by`,
	`[Ee]ditor`,
	`Series\s+[A-Z]`,
	`Part\s+[A-Z\d]`,
	`\d+:\s*\d+`,
}

var (
	venueMarkerPattern = regexp.MustCompile(`(?i)\.\s*(?:` + strings.Join(venueMarkers, "|") + `)`)

	// Short labeled section: ". Short Phrase. Capital" suggests the title
	// ended before the labeled section.
	sectionPattern = regexp.MustCompile(`\.\s+([A-Z][a-z]+(?:\s+[a-z]+)*)\.\s+[A-Z]`)

	// Location boundary: ". City, ST" or ". City: Publisher".
	locationPattern = regexp.MustCompile(`\.\s*(?:[A-Z][a-z]+,\s*[A-Z]{2}|[A-Z][a-z]+:\s*[A-Z])`)

	// Volume boundary: ". 9(" or ". 9:". The group captures the non-digit
	// (or start) before the period, standing in for a lookbehind that
	// would otherwise let version strings like "4.0:" match.
	volumePattern = regexp.MustCompile(`(^|[^\d])\.\s+\d+\s*[(:]`)

	sentenceBoundaryPattern = regexp.MustCompile(`\.\s+[A-Z]`)
	journalContinuation     = regexp.MustCompile(`^[A-Z][a-z]+\s+(?:of|and|in|on|for)\s`)

	periodSplitPattern = regexp.MustCompile(`\.\s+`)

	// Fallback author-prefix patterns for entries without a
	// parenthesized year.
	fullNameAuthorEndPattern = regexp.MustCompile(`and\s+[A-Z][a-z]+,\s+[A-Z][a-z]+(?:\s+[A-Z]\.?)?\.\s+`)
	simpleAuthorPattern      = regexp.MustCompile(`^[A-Z][a-z]+,\s*[A-Z]\.(?:\s*[A-Z]\.)*\s+`)

	quotedTitlePattern = regexp.MustCompile(`"([^"]+)"`)
)

// ExtractTitle isolates the title substring from an entry's raw text.
// Returns the empty string when no confident boundary is found.
func ExtractTitle(text string) string {
	// Translation entries: the title sits between the first period and
	// the translation clause.
	if translatedByLocator.MatchString(text) {
		dot := strings.IndexByte(text, '.')
		pos := strings.Index(strings.ToLower(text), "translated by")
		if dot > 0 && pos > dot {
			title := strings.TrimSpace(text[dot+1 : pos])
			title = strings.TrimRight(title, ".")
			if title != "" {
				return cleanTitle(title)
			}
		}
	}

	// With an explicit (YYYY) the title search starts right after it.
	if loc := titleYearPattern.FindStringIndex(text); loc != nil {
		after := leadingPunctPattern.ReplaceAllString(text[loc[1]:], "")
		if title := titleBody(after); title != "" {
			return cleanTitle(title)
		}
	}

	if title := titleFallback(text); title != "" {
		return cleanTitle(title)
	}
	return ""
}

// titleBody extracts the title from text assumed to begin with it, trying
// each boundary rule in priority order.
func titleBody(text string) string {
	// (a) Comma-then-journal: "Title, Journal of ...".
	for _, p := range commaJournalPatterns {
		if loc := p.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(text[:loc[0]])
		}
	}

	// (b) 3-part period split: "Title. Short section. Journal ..." keeps
	// only the first sentence.
	if parts := periodSplitPattern.Split(text, -1); len(parts) >= 3 {
		second, third := parts[1], parts[2]
		if second != "" && len(strings.Fields(second)) <= 4 {
			for _, p := range journalStartPatterns {
				if p.MatchString(third) {
					return strings.TrimSpace(parts[0])
				}
			}
		}
	}

	// (c) Period directly followed by a venue marker.
	if loc := venueMarkerPattern.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}

	// (d) Short labeled section.
	if m := sectionPattern.FindStringSubmatchIndex(text); m != nil {
		section := text[m[2]:m[3]]
		if len(strings.Fields(section)) <= 4 {
			return strings.TrimSpace(text[:m[0]])
		}
	}

	// (e) Period before a location.
	if loc := locationPattern.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}

	// (f) Period before a bare volume/issue marker.
	if m := volumePattern.FindStringSubmatchIndex(text); m != nil {
		return strings.TrimSpace(text[:m[3]])
	}

	// (g) First unambiguous sentence boundary.
	if pos := sentenceBoundary(text); pos >= 0 {
		return strings.TrimSpace(text[:pos])
	}

	// (h) Anything up to the first period.
	if dot := strings.IndexByte(text, '.'); dot > 0 {
		return strings.TrimSpace(text[:dot])
	}
	return strings.TrimSpace(text)
}

// sentenceBoundary finds the first "period, space, capital" position that is
// not a false positive from a single-letter initial or the abbreviations
// "vs", "etc", "al", "No". Returns -1 when none survives.
func sentenceBoundary(text string) int {
	for _, loc := range sentenceBoundaryPattern.FindAllStringIndex(text, -1) {
		before := text[:loc[0]]
		if n := len(before); n > 0 {
			last := before[n-1]
			if last >= 'A' && last <= 'Z' {
				continue // initial like "N." or "N.Y."
			}
		}
		if hasAbbrevSuffix(before) {
			continue
		}
		// The vestigial subtitle check from the source heuristics: a
		// journal-name continuation stops the title here, and so does
		// everything else. Both branches take the boundary.
		return loc[0]
	}
	return -1
}

var titleAbbrevs = []string{"vs", "etc", "al", "No"}

func hasAbbrevSuffix(s string) bool {
	for _, a := range titleAbbrevs {
		if strings.HasSuffix(s, a) {
			return true
		}
	}
	return false
}

// titleFallback handles entries without any parenthesized year: an author
// prefix is stripped (full-name "and Last, First." form, "Last, I." form, or
// the text after the first sentence break) and the boundary cascade re-runs
// on the remainder; failing that, a quoted span is taken as the title.
func titleFallback(text string) string {
	if loc := fullNameAuthorEndPattern.FindStringIndex(text); loc != nil {
		return titleBody(text[loc[1]:])
	}
	if loc := simpleAuthorPattern.FindStringIndex(text); loc != nil {
		return titleBody(text[loc[1]:])
	}
	if idx := strings.Index(text, ". "); idx > 0 {
		return titleBody(text[idx+2:])
	}
	if m := quotedTitlePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
