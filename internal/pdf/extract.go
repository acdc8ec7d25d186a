// Package pdf extracts plain text from PDF bibliographies.
//
// Text acquisition is deliberately thin: layout reconstruction is imperfect
// (hyphenation breaks, merged columns, lost line breaks are all expected)
// and the downstream parsing engine is built to tolerate that noise rather
// than have this package attempt repairs.
package pdf

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// citationKeyPattern matches a bracketed citation key with an apostrophe
// year, e.g. "[Hill '79]".
var citationKeyPattern = regexp.MustCompile(`\[[^\]]*['‘’]\d{2,4}(?:\s+[A-Z])?\]`)

// ExtractText extracts text from up to maxPages pages of a PDF file.
// maxPages <= 0 means all pages. Pages whose text cannot be decoded are
// skipped; a file that cannot be opened is a hard failure for the document.
func ExtractText(filePath string, maxPages int) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	return pagesText(r, maxPages), nil
}

// ExtractTextReader extracts text from a PDF reader.
func ExtractTextReader(r io.ReaderAt, size int64, maxPages int) (string, error) {
	pdfReader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	return pagesText(pdfReader, maxPages), nil
}

func pagesText(r *pdf.Reader, maxPages int) string {
	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var builder strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String()
}

// CountCitationKeys counts bracketed citation-key markers in extracted text.
// A zero count is a cheap signal that the blob is not a keyed bibliography
// before the full parsing pipeline runs.
func CountCitationKeys(text string) int {
	return len(citationKeyPattern.FindAllString(text, -1))
}
