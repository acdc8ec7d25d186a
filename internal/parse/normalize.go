// Package parse implements the reference segmentation and field extraction
// engine. It turns one noisy text blob (typically extracted from a PDF
// bibliography) into an ordered sequence of structured bib.Reference records
// using layered heuristics: no single grammar covers the citation styles seen
// in real bibliographies, so each extractor is an ordered cascade where the
// first successful rule wins.
package parse

import "regexp"

var (
	// ruleLinePattern matches standalone decorative rule lines (4+ dashes,
	// hyphen or en/em dash, alone on a line).
	ruleLinePattern = regexp.MustCompile(`(?m)^[-–—]{4,}[ \t]*$`)

	// bannerPattern matches a chapter banner: 3+ dashes surrounding the
	// literal word "Chapter" plus a number. The dash count varies per
	// source convention; 3+ covers all observed variants.
	bannerPattern = regexp.MustCompile(`[-–—]{3,}\s*Chapter\s*(\d+)\s*[-–—]{3,}`)
)

// canonicalBanner is the normalized banner form. Normalize rewrites every
// recognized banner to this shape so that downstream splitting sees a single
// convention regardless of how the source decorated its chapter headings.
const canonicalBanner = "———— Chapter $1 ————"

// Normalize strips structural noise from a raw text blob: standalone rule
// lines are deleted and chapter banners are rewritten to a canonical form.
// Pure and idempotent; text without matches passes through unchanged.
func Normalize(text string) string {
	text = ruleLinePattern.ReplaceAllString(text, "")
	text = bannerPattern.ReplaceAllString(text, canonicalBanner)
	return text
}
