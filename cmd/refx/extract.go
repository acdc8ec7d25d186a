package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
	"github.com/ellis-chang/academic-reference-extractor/internal/parse"
	"github.com/ellis-chang/academic-reference-extractor/internal/pdf"
)

var (
	extractMaxRefs  int
	extractMaxPages int
	extractChapter  string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract structured references from a bibliography",
	Long: `Extract parses a bibliography file (PDF or plain text) into structured
reference records. Each record carries the citation key, chapter, year,
author list and title recovered from the raw entry text.

Output is a JSON array by default; use --human for a readable summary.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		refs := loadReferences(args[0])

		if extractChapter != "" {
			filtered := refs[:0]
			for _, r := range refs {
				if r.Chapter == extractChapter {
					filtered = append(filtered, r)
				}
			}
			refs = filtered
		}
		if extractMaxRefs > 0 && len(refs) > extractMaxRefs {
			refs = refs[:extractMaxRefs]
		}

		if humanOutput {
			printReferencesHuman(refs)
			return
		}
		if err := outputJSON(refs); err != nil {
			exitWithError(ExitError, "encoding output: %v", err)
		}
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractMaxRefs, "max-refs", 0, "Limit output to the first N references (0 = all)")
	extractCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "Only read the first N pages of a PDF (0 = all)")
	extractCmd.Flags().StringVar(&extractChapter, "chapter", "", "Only output references from this chapter")
	rootCmd.AddCommand(extractCmd)
}

// loadReferences reads a PDF or text file and parses it into references.
// Exits on unreadable input.
func loadReferences(path string) []bib.Reference {
	text, err := loadText(path)
	if err != nil {
		exitWithError(ExitInputError, "reading %s: %v", path, err)
	}
	if strings.TrimSpace(text) == "" {
		exitWithError(ExitInputError, "no text extracted from %s", path)
	}
	return parse.Parse(text)
}

func loadText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdf.ExtractText(path, extractMaxPages)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printReferencesHuman(refs []bib.Reference) {
	outputHuman("Extracted %d references\n\n", len(refs))
	for i, r := range refs {
		outputHuman("%d. [%s] (%s, chapter %s)\n", i+1, r.CitationKey, orDash(r.Year), r.Chapter)
		outputHuman("   %s\n", truncateString(orDash(r.Title), TitleMaxLen))
		outputHuman("   %s\n\n", formatAuthors(r.Authors, 3))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
