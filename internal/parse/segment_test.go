package parse

import (
	"testing"
)

func TestSegmentLines(t *testing.T) {
	chunk := Chunk{
		Chapter: "Chapter 1",
		Text: "preface line without a key\n" +
			"[Hill '79] Hill, D. R. (1979). First entry\n" +
			"spanning two lines.\n" +
			"\n" +
			"[Chen '20 A] Chen, T. (2020). Second entry.\n",
	}

	refs := Segment(chunk)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2: %+v", len(refs), refs)
	}

	if refs[0].CitationKey != "Hill '79" {
		t.Errorf("key 0 = %q, want %q", refs[0].CitationKey, "Hill '79")
	}
	if want := "Hill, D. R. (1979). First entry spanning two lines."; refs[0].RawText != want {
		t.Errorf("raw 0 = %q, want %q", refs[0].RawText, want)
	}
	if refs[1].CitationKey != "Chen '20 A" {
		t.Errorf("key 1 = %q, want %q", refs[1].CitationKey, "Chen '20 A")
	}
	for i, r := range refs {
		if r.Chapter != "Chapter 1" {
			t.Errorf("ref %d chapter = %q, want %q", i, r.Chapter, "Chapter 1")
		}
	}
}

func TestSegmentCountMatchesKeyLines(t *testing.T) {
	// One reference per key-starting line, independent of body length.
	chunk := Chunk{
		Chapter: "Unknown",
		Text: "[A '99] first.\n" +
			"[B '01] second with\na continuation.\n" +
			"[C '15] third.\n",
	}

	refs := segmentLines(chunk)
	if len(refs) != 3 {
		t.Fatalf("got %d references, want 3", len(refs))
	}
	for i, want := range []string{"A '99", "B '01", "C '15"} {
		if refs[i].CitationKey != want {
			t.Errorf("key %d = %q, want %q", i, refs[i].CitationKey, want)
		}
	}
}

func TestSegmentFlattenedFallback(t *testing.T) {
	// All entries on one line: the line strategy sees a single entry, the
	// flattened scan recovers both and must win.
	chunk := Chunk{
		Chapter: "Chapter 2",
		Text:    "[Wiener '48] N. Wiener (1948). First entry. [Hill '79] Hill, D. R. (1979). Second entry.",
	}

	if n := len(segmentLines(chunk)); n != 1 {
		t.Fatalf("line strategy found %d entries, want 1", n)
	}

	refs := Segment(chunk)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2: %+v", len(refs), refs)
	}
	if refs[0].CitationKey != "Wiener '48" || refs[1].CitationKey != "Hill '79" {
		t.Errorf("keys = %q, %q", refs[0].CitationKey, refs[1].CitationKey)
	}
}

func TestSegmentLineStrategyPreferred(t *testing.T) {
	// The flattened scan requires an apostrophe year and finds nothing
	// here, so the looser line-mode key must carry the entry.
	chunk := Chunk{
		Chapter: "Unknown",
		Text:    "[RFC2119] Bradner, S. (1997). Key words for use in RFCs.",
	}

	refs := Segment(chunk)
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1", len(refs))
	}
	if refs[0].CitationKey != "RFC2119" {
		t.Errorf("key = %q, want %q", refs[0].CitationKey, "RFC2119")
	}
}

func TestSegmentBracketedFragmentNotABoundary(t *testing.T) {
	// A mid-entry bracket without an apostrophe year must not split the
	// entry in flattened mode.
	chunk := Chunk{
		Chapter: "Unknown",
		Text:    "[Shannon '48] C. Shannon (1948). A mathematical theory [reprinted 1963] of communication. [Hartley '28] R. Hartley (1928). Transmission of information.",
	}

	refs := Segment(chunk)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2: %+v", len(refs), refs)
	}
	if got := refs[0].RawText; got != "C. Shannon (1948). A mathematical theory [reprinted 1963] of communication." {
		t.Errorf("raw 0 = %q", got)
	}
}

func TestSegmentDiscardsEmptyEntries(t *testing.T) {
	chunk := Chunk{
		Chapter: "Unknown",
		Text:    "[Empty '00]\n[Real '05] An actual entry.\n",
	}

	refs := Segment(chunk)
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
	}
	if refs[0].CitationKey != "Real '05" {
		t.Errorf("key = %q, want %q", refs[0].CitationKey, "Real '05")
	}
}

func TestSegmentEmptyChunk(t *testing.T) {
	refs := Segment(Chunk{Chapter: "Unknown", Text: "no keys in here at all"})
	if len(refs) != 0 {
		t.Fatalf("got %d references, want 0", len(refs))
	}
}
