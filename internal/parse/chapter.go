package parse

import (
	"strings"
)

// Chunk is a chapter-tagged slice of the document text.
type Chunk struct {
	Chapter string // "Chapter <N>", or bib.ChapterUnknown for the preamble
	Text    string
}

// chapterLabelUnknown mirrors bib.ChapterUnknown without importing bib here;
// the two must stay in sync (checked in tests).
const chapterLabelUnknown = "Unknown"

// SplitChapters splits normalized text on chapter banners into chapter-tagged
// chunks. The content preceding the first banner is tagged Unknown unless it
// is a bibliography preamble (contains the literal word "Bibliography"), in
// which case it is dropped: front matter carries no entries.
//
// Text without any banner comes back as a single chunk, subject to the same
// preamble rule.
func SplitChapters(text string) []Chunk {
	matches := bannerPattern.FindAllStringSubmatchIndex(text, -1)

	var chunks []Chunk

	appendChunk := func(label, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		chunks = append(chunks, Chunk{Chapter: label, Text: content})
	}

	// Preamble before the first banner (or the whole text).
	preambleEnd := len(text)
	if len(matches) > 0 {
		preambleEnd = matches[0][0]
	}
	preamble := text[:preambleEnd]
	if !strings.Contains(preamble, "Bibliography") {
		appendChunk(chapterLabelUnknown, preamble)
	}

	for i, m := range matches {
		label := "Chapter " + text[m[2]:m[3]]
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		appendChunk(label, text[start:end])
	}

	return chunks
}
