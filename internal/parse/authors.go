package parse

import (
	"regexp"
	"strings"
)

// Author extraction runs in three phases: boundary detection (find the
// substring that holds only author names), separator normalization (unify
// the ";", "&", "and" and et-al conventions into one separator token), and
// per-segment decomposition (recombine "Last, Initials" fragments using
// name-shape classification).

// authorSep is the internal separator token substituted for every
// between-author delimiter before splitting. Semicolons are handled before
// "&"/"and" so that styles using ";" between full "Last, First" units are
// not confused with comma-based splitting.
const authorSep = "\x1f"

var (
	translatedByPattern = regexp.MustCompile(`(?i)translated\s+by\s+([^(]+)\s*\(\d{4}\)`)
	editedByPattern     = regexp.MustCompile(`(?i)edited\s+by\s+([^(]+)\s*\(\d{4}\)`)
	yearParenPattern    = regexp.MustCompile(`\(\d{4}\)`)

	etAlAmpPattern = regexp.MustCompile(`(?:\.{3}|…)\s*&`)
	ampSepPattern  = regexp.MustCompile(`\s+&\s+`)
	andSepPattern  = regexp.MustCompile(`(?i)\s+and\s+`)

	nonNamePattern = regexp.MustCompile(`^[\d\s.,]+$`)
	hasWordPattern = regexp.MustCompile(`[A-Za-z]{2,}`)
)

// Name-shape classifiers. Each matches a comma-delimited fragment of an
// author segment; the combination rules below decide which adjacent shapes
// merge back into a single name.
var (
	// lastNameShape: a bare surname. Single capitalized word, a compound
	// of up to three words with possible lowercase particles (Van der
	// Maaten), an apostrophe surname (O'Brien), or a hyphenated pair.
	lastNameShape = regexp.MustCompile(
		`^(?:[A-Z][a-z]+(?:\s+[A-Za-z][a-z]+){0,2}|[A-Z]'[A-Z][a-z]+|[A-Z][a-z]+-[A-Z][a-z]+)$`)

	// initialsShape: one or more capital letters with optional periods,
	// spaces ignored: "A.", "A. B.", "L.J.P.", "GE".
	initialsShape = regexp.MustCompile(`^(?:[A-Z]\.?)+$`)

	// firstNameShape: a single capitalized word up to 10 characters, with
	// an optional trailing period.
	firstNameShape = regexp.MustCompile(`^[A-Z][a-z]*\.?$`)

	// fullNameShape: a fragment already in "First Last" order.
	fullNameShape = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)

	// singleNameShape: a lone capitalized word, kept as a standalone
	// single-name author when nothing initials-like follows.
	singleNameShape = regexp.MustCompile(`^[A-Z][a-z]+$`)

	// deferredInitials recognizes a following fragment as initials still
	// waiting to be consumed, e.g. "A." or "A. B.".
	deferredInitials = regexp.MustCompile(`^[A-Z]\.?(?:\s*[A-Z]\.?)*$`)

	// lastInitialsPattern matches a comma-less "Last Initials" name like
	// "Ong C.S." for reordering during normalization.
	lastInitialsPattern = regexp.MustCompile(`^([A-Z][a-z]+)\s+([A-Z]\.?(?:\s*[A-Z]\.?){0,2})$`)
)

// ExtractAuthors decomposes the author-bearing prefix of an entry into a
// list of normalized "First Last" names in appearance order. Returns nil
// when no plausible author substring exists.
func ExtractAuthors(text string) []string {
	// Translation entries credit the translator as the sole author.
	if m := translatedByPattern.FindStringSubmatch(text); m != nil {
		name := normalizeAuthorName(m[1])
		if name == "" {
			return nil
		}
		return []string{name}
	}

	// Editor entries: the editor list is parsed as the author list.
	if m := editedByPattern.FindStringSubmatch(text); m != nil {
		return parseAuthorList(m[1])
	}

	return parseAuthorList(authorBoundary(text))
}

// authorBoundary locates the substring containing only authors: everything
// before the first parenthesized year, else before the first period, else
// the first 50 characters.
func authorBoundary(text string) string {
	if loc := yearParenPattern.FindStringIndex(text); loc != nil {
		return text[:loc[0]]
	}
	if dot := strings.IndexByte(text, '.'); dot > 0 {
		return text[:dot]
	}
	if len(text) > 50 {
		return text[:50]
	}
	return text
}

// parseAuthorList splits an author substring into normalized names.
func parseAuthorList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ",.")
	if s == "" {
		return nil
	}

	// "... &" marks skipped middle authors; reduce it to a plain comma so
	// the flanking names survive.
	s = etAlAmpPattern.ReplaceAllString(s, ",")

	// Unify separators, semicolons first.
	s = strings.ReplaceAll(s, ";", authorSep)
	s = ampSepPattern.ReplaceAllString(s, authorSep)
	s = andSepPattern.ReplaceAllString(s, authorSep)

	var authors []string
	for _, segment := range strings.Split(s, authorSep) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		authors = append(authors, decomposeSegment(segment)...)
	}

	var cleaned []string
	for _, a := range authors {
		a = normalizeAuthorName(a)
		if len(a) > 1 && !nonNamePattern.MatchString(a) {
			cleaned = append(cleaned, a)
		}
	}
	return cleaned
}

// decomposeSegment splits one separator-delimited segment on commas and
// recombines fragments by shape: a last-name shape immediately followed by
// an initials or short-first-name shape merges back into "Last, First"; a
// fragment already in "First Last" order is kept verbatim; a lone
// capitalized word stands alone unless the next fragment looks like
// initials waiting to be consumed.
func decomposeSegment(segment string) []string {
	parts := strings.Split(segment, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var names []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if part == "" {
			continue
		}

		if i+1 < len(parts) {
			next := parts[i+1]
			if lastNameShape.MatchString(part) && isGivenNameFragment(next) {
				names = append(names, part+", "+next)
				i++
				continue
			}
		}

		if fullNameShape.MatchString(part) {
			names = append(names, part)
			continue
		}

		if singleNameShape.MatchString(part) && len(part) > 2 {
			// Standalone single-name author, unless initials follow:
			// those are consumed by the pair rule on a later pass, so
			// the lone surname is deferred rather than emitted twice.
			if i+1 >= len(parts) || !deferredInitials.MatchString(parts[i+1]) {
				names = append(names, part)
			}
			continue
		}

		if hasWordPattern.MatchString(part) {
			names = append(names, part)
		}
	}
	return names
}

// isGivenNameFragment reports whether a fragment looks like the initials or
// short first name belonging to a preceding surname.
func isGivenNameFragment(s string) bool {
	if s == "" {
		return false
	}
	if initialsShape.MatchString(strings.ReplaceAll(s, " ", "")) {
		return true
	}
	if len(s) <= 3 && s[0] >= 'A' && s[0] <= 'Z' && !strings.HasSuffix(s, ".") {
		return true
	}
	return len(s) <= 10 && firstNameShape.MatchString(s)
}

// normalizeAuthorName converts a name to "First Last" form: "Last, First"
// pairs are reordered, as are comma-less "Last Initials" forms, and stray
// punctuation is trimmed. Trailing periods that terminate initials are
// preserved ("L.J.P." stays "L.J.P.").
func normalizeAuthorName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = trimNamePunct(name)
	if name == "" {
		return ""
	}

	if idx := strings.IndexByte(name, ','); idx >= 0 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		switch {
		case first != "" && last != "" && first[0] >= 'A' && first[0] <= 'Z':
			name = restoreInitialPeriods(first) + " " + last
		default:
			name = last
		}
	} else if m := lastInitialsPattern.FindStringSubmatch(name); m != nil {
		name = restoreInitialPeriods(strings.TrimSpace(m[2])) + " " + m[1]
	}

	return trimNamePunct(name)
}

// bareInitialsToken matches an initials token whose final period was lost to
// upstream punctuation trimming: "G", "G.E", "L.J.P" (but not "L.J.P.").
var bareInitialsToken = regexp.MustCompile(`^(?:[A-Z]\.)*[A-Z]$`)

// restoreInitialPeriods re-adds the period to initials tokens that lost it
// ("G" → "G.", "G.E" → "G.E."). Other tokens pass through untouched.
func restoreInitialPeriods(first string) string {
	tokens := strings.Fields(first)
	for i, tok := range tokens {
		if bareInitialsToken.MatchString(tok) {
			tokens[i] = tok + "."
		}
	}
	return strings.Join(tokens, " ")
}

// trimNamePunct strips leading and trailing separator punctuation from a
// name. A trailing period is kept when it closes a single-letter initial.
func trimNamePunct(name string) string {
	name = strings.Trim(name, " ,;:")
	name = strings.TrimLeft(name, ".")
	for strings.HasSuffix(name, ".") {
		if len(name) >= 2 {
			prev := name[len(name)-2]
			if prev >= 'A' && prev <= 'Z' {
				break // initials like "G." or "L.J.P."
			}
		}
		name = strings.Trim(name[:len(name)-1], " ,;:")
	}
	return strings.TrimSpace(name)
}
