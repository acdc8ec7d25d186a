// Package bib defines the core domain types for parsed bibliography entries.
package bib

// Reference represents one parsed bibliography entry.
type Reference struct {
	// CitationKey is the bracketed marker body, e.g. "Hill '79". Unique
	// within a document by convention but duplicates are kept in order.
	CitationKey string `json:"citation_key"`

	// RawText is the full entry text after key removal. Retained for
	// debugging and as lookup context; never modified after segmentation.
	RawText string `json:"raw_text"`

	// Chapter is the label of the enclosing chapter segment, or
	// ChapterUnknown if none was detected.
	Chapter string `json:"chapter"`

	// Year is the normalized 4-digit publication year, empty if
	// undetermined.
	Year string `json:"year"`

	// Authors holds normalized "First Last" names in appearance order.
	Authors []string `json:"authors"`

	FirstAuthor string `json:"first_author"`
	LastAuthor  string `json:"last_author"`

	// Title is the best-effort extracted title, empty if no confident
	// boundary was found.
	Title string `json:"title"`

	// Venue is reserved; the extraction engine leaves it empty.
	Venue string `json:"venue,omitempty"`
}

// ChapterUnknown labels entries found outside any recognized chapter banner.
const ChapterUnknown = "Unknown"

// SetAuthors stores the author list and derives FirstAuthor/LastAuthor.
// With one author (or none) the two derived fields are equal.
func (r *Reference) SetAuthors(authors []string) {
	r.Authors = authors
	if len(authors) == 0 {
		r.FirstAuthor = ""
		r.LastAuthor = ""
		return
	}
	r.FirstAuthor = authors[0]
	r.LastAuthor = authors[len(authors)-1]
}

// NumAuthors returns the number of parsed authors.
func (r *Reference) NumAuthors() int {
	return len(r.Authors)
}
