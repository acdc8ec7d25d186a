package parse

import (
	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
)

// Parse runs the full pipeline over one document blob: normalize, split into
// chapter chunks, segment each chunk into entries, then fill in year, author
// and title fields per entry. The three field extractors are independent
// pure functions of the entry text and key, so entries carry no shared
// state; emission order always matches document order.
//
// An empty input yields zero records. Parse never fails: a chunk without
// citation keys simply contributes no entries, and an entry whose fields
// cannot be extracted is still emitted with the fields empty.
func Parse(text string) []bib.Reference {
	text = Normalize(text)

	var refs []bib.Reference
	for _, chunk := range SplitChapters(text) {
		for _, ref := range Segment(chunk) {
			fillFields(&ref)
			refs = append(refs, ref)
		}
	}
	return refs
}

// fillFields populates the derived fields of a segmented entry.
func fillFields(ref *bib.Reference) {
	ref.Year = ExtractYear(ref.CitationKey, ref.RawText)
	ref.SetAuthors(ExtractAuthors(ref.RawText))
	ref.Title = ExtractTitle(ref.RawText)
}

// ParseEntry parses a single already-segmented entry. Useful for callers
// that obtained key and text from another source.
func ParseEntry(citationKey, text, chapter string) (bib.Reference, bool) {
	ref, ok := newReference(citationKey, text, chapter)
	if !ok {
		return bib.Reference{}, false
	}
	fillFields(&ref)
	return ref, true
}
