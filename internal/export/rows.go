// Package export writes extraction results as spreadsheets (xlsx) and CSV.
package export

import (
	"fmt"

	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
	"github.com/ellis-chang/academic-reference-extractor/internal/lookup"
)

// Row is one output line: a parsed reference plus any affiliation data
// attached for its first and last authors.
type Row struct {
	Title            string
	Year             string
	Chapter          string
	FirstAuthor      string
	FirstAffiliation string
	FirstDepartment  string
	FirstEmail       string
	LastAuthor       string
	LastAffiliation  string
	LastDepartment   string
	LastEmail        string
	CitationKey      string
	Confidence       string
}

// Headers are the column headers, in output order.
var Headers = []string{
	"Paper Title",
	"Year",
	"Chapter",
	"First Author Name",
	"First Author Affiliation",
	"First Author Department",
	"First Author Email",
	"Last Author Name",
	"Last Author Affiliation",
	"Last Author Department",
	"Last Author Email",
	"Citation Key",
	"Data Confidence",
}

// columnWidths mirror Headers; tuned for readable xlsx output.
var columnWidths = []float64{50, 8, 12, 25, 35, 25, 30, 25, 35, 25, 30, 15, 12}

// values returns the row cells in Headers order.
func (r Row) values() []string {
	return []string{
		r.Title, r.Year, r.Chapter,
		r.FirstAuthor, r.FirstAffiliation, r.FirstDepartment, r.FirstEmail,
		r.LastAuthor, r.LastAffiliation, r.LastDepartment, r.LastEmail,
		r.CitationKey, r.Confidence,
	}
}

// BuildRows combines parsed references with per-index lookup results into
// output rows, preserving reference order. Either map may be nil or sparse;
// missing lookups leave the affiliation cells empty.
func BuildRows(refs []bib.Reference, first, last map[int]*lookup.AuthorInfo) []Row {
	rows := make([]Row, len(refs))
	for i, ref := range refs {
		row := Row{
			Title:       ref.Title,
			Year:        ref.Year,
			Chapter:     ref.Chapter,
			FirstAuthor: ref.FirstAuthor,
			LastAuthor:  ref.LastAuthor,
			CitationKey: ref.CitationKey,
		}

		var maxConfidence float64
		if info := first[i]; info != nil {
			row.FirstAffiliation = info.Affiliation
			row.FirstDepartment = info.Department
			row.FirstEmail = info.Email
			maxConfidence = info.Confidence
		}
		if info := last[i]; info != nil {
			row.LastAffiliation = info.Affiliation
			row.LastDepartment = info.Department
			row.LastEmail = info.Email
			if info.Confidence > maxConfidence {
				maxConfidence = info.Confidence
			}
		}
		if maxConfidence > 0 {
			row.Confidence = fmt.Sprintf("%.1f", maxConfidence)
		}

		rows[i] = row
	}
	return rows
}
