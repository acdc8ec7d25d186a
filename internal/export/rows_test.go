package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
	"github.com/ellis-chang/academic-reference-extractor/internal/lookup"
)

func sampleRefs() []bib.Reference {
	refs := []bib.Reference{
		{
			CitationKey: "Chen '20 A",
			Chapter:     "Chapter 2",
			Year:        "2020",
			Title:       "A simple framework for contrastive learning of visual representations",
		},
		{
			CitationKey: "Wiener '48",
			Chapter:     "Chapter 1",
			Year:        "1948",
			Title:       "Time, communication, and the nervous system",
		},
	}
	refs[0].SetAuthors([]string{"T. Chen", "S. Kornblith", "M. Norouzi", "G. Hinton"})
	refs[1].SetAuthors([]string{"N. Wiener"})
	return refs
}

func TestBuildRows(t *testing.T) {
	refs := sampleRefs()
	first := map[int]*lookup.AuthorInfo{
		0: {Name: "Ting Chen", Affiliation: "Google Research", Confidence: 0.9},
	}
	last := map[int]*lookup.AuthorInfo{
		0: {Name: "Geoffrey Hinton", Affiliation: "University of Toronto", Department: "CS", Confidence: 0.8},
	}

	rows := BuildRows(refs, first, last)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	r := rows[0]
	if r.FirstAuthor != "T. Chen" || r.LastAuthor != "G. Hinton" {
		t.Errorf("authors = %q / %q", r.FirstAuthor, r.LastAuthor)
	}
	if r.FirstAffiliation != "Google Research" {
		t.Errorf("first affiliation = %q", r.FirstAffiliation)
	}
	if r.LastDepartment != "CS" {
		t.Errorf("last department = %q", r.LastDepartment)
	}
	if r.Confidence != "0.9" {
		t.Errorf("confidence = %q, want max of the two lookups", r.Confidence)
	}

	// Second reference had no lookup data at all.
	if rows[1].FirstAffiliation != "" || rows[1].Confidence != "" {
		t.Errorf("row without lookups carries data: %+v", rows[1])
	}
	if rows[1].FirstAuthor != "N. Wiener" || rows[1].LastAuthor != "N. Wiener" {
		t.Errorf("single author row = %q / %q", rows[1].FirstAuthor, rows[1].LastAuthor)
	}
}

func TestBuildRowsNilMaps(t *testing.T) {
	rows := BuildRows(sampleRefs(), nil, nil)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Title == "" || rows[0].CitationKey == "" {
		t.Errorf("extraction fields missing: %+v", rows[0])
	}
}

func TestRowValuesAlignWithHeaders(t *testing.T) {
	var r Row
	if got := len(r.values()); got != len(Headers) {
		t.Fatalf("values() yields %d cells, Headers has %d", got, len(Headers))
	}
	if len(columnWidths) != len(Headers) {
		t.Fatalf("columnWidths has %d entries, Headers has %d", len(columnWidths), len(Headers))
	}
}

func TestWriteCSV(t *testing.T) {
	rows := BuildRows(sampleRefs(), nil, nil)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if !reflect.DeepEqual(records[0], Headers) {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "A simple framework for contrastive learning of visual representations" {
		t.Errorf("title cell = %q", records[1][0])
	}
	if records[2][11] != "Wiener '48" {
		t.Errorf("citation key cell = %q", records[2][11])
	}
}
