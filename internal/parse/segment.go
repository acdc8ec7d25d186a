package parse

import (
	"regexp"
	"strings"

	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
)

var (
	// keyLinePattern matches a citation key at the start of a line, e.g.
	// "[Hill '79]". Non-greedy body up to the first closing bracket.
	keyLinePattern = regexp.MustCompile(`^\[([^\]]+?)\]`)

	// keySpanPattern is the stricter file-scope key pattern used by the
	// flattened strategy: bracketed text ending in an apostrophe year with
	// an optional disambiguating letter, e.g. "[Chen '20 A]". The year
	// requirement keeps bracketed fragments inside entry bodies (formula
	// references, transliterated titles) from being taken as boundaries
	// when there are no line breaks to anchor on.
	keySpanPattern = regexp.MustCompile(`\[([^\]]*['‘’]\d{2,4}(?:\s+[A-Z])?)\]`)
)

// Segment slices a chapter chunk into one Reference per citation key.
//
// Two independent strategies exist: a line-oriented state machine and a
// flattened-text span scan. The line strategy is preferred; the flattened one
// is a fallback for sources whose extraction lost significant line breaks,
// and wins only when it finds strictly more entries.
func Segment(chunk Chunk) []bib.Reference {
	line := segmentLines(chunk)
	if flat := segmentFlat(chunk); len(flat) > len(line) {
		return flat
	}
	return line
}

// segmentLines walks the chunk line by line. A line opening with a bracketed
// key flushes any accumulating entry and starts a new one; other non-blank
// lines are appended to the current entry joined with single spaces. Citation
// keys are the only reliable entry boundary across citation styles, so no
// sentence-level heuristics participate in segmentation.
func segmentLines(chunk Chunk) []bib.Reference {
	var refs []bib.Reference

	var key string
	var body []string

	flush := func() {
		if key == "" {
			return
		}
		if ref, ok := newReference(key, strings.Join(body, " "), chunk.Chapter); ok {
			refs = append(refs, ref)
		}
	}

	for _, line := range strings.Split(chunk.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := keyLinePattern.FindStringSubmatchIndex(line); m != nil {
			flush()
			key = line[m[2]:m[3]]
			body = body[:0]
			if rest := strings.TrimSpace(line[m[1]:]); rest != "" {
				body = append(body, rest)
			}
			continue
		}

		if key != "" {
			body = append(body, line)
		}
	}
	flush()

	return refs
}

// segmentFlat applies the key pattern to the whole chunk with newlines
// collapsed, slicing each entry as the span between consecutive key matches.
func segmentFlat(chunk Chunk) []bib.Reference {
	text := strings.Join(strings.Fields(chunk.Text), " ")

	matches := keySpanPattern.FindAllStringSubmatchIndex(text, -1)
	var refs []bib.Reference

	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		key := text[m[2]:m[3]]
		if ref, ok := newReference(key, text[m[1]:end], chunk.Chapter); ok {
			refs = append(refs, ref)
		}
	}

	return refs
}

// newReference builds the skeleton record for one entry. An entry whose text
// trims empty is discarded; everything else is kept, even if later field
// extraction comes up empty, since downstream consumers can still look an
// entry up by its raw text.
func newReference(key, raw, chapter string) (bib.Reference, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return bib.Reference{}, false
	}
	return bib.Reference{
		CitationKey: key,
		RawText:     raw,
		Chapter:     chapter,
	}, true
}
