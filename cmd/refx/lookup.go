package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ellis-chang/academic-reference-extractor/internal/bib"
	"github.com/ellis-chang/academic-reference-extractor/internal/config"
	"github.com/ellis-chang/academic-reference-extractor/internal/export"
	"github.com/ellis-chang/academic-reference-extractor/internal/lookup"
)

var (
	lookupMaxRefs  int
	lookupNoLookup bool
	lookupNoCache  bool
	lookupXLSXPath string
	lookupCSVPath  string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <file>",
	Short: "Extract references and resolve author affiliations",
	Long: `Lookup extracts references like the extract command, then resolves the
first and last author of each reference against Semantic Scholar and
DBLP. Resolved affiliations are cached locally so repeated runs stay
cheap. Results can be written to an xlsx workbook or CSV.

Set S2_API_KEY (environment or .env) to raise the Semantic Scholar
rate limit. Without --xlsx or --csv the table is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		refs := loadReferences(args[0])
		if lookupMaxRefs > 0 && len(refs) > lookupMaxRefs {
			refs = refs[:lookupMaxRefs]
		}

		first := make(map[int]*lookup.AuthorInfo)
		last := make(map[int]*lookup.AuthorInfo)
		if !lookupNoLookup {
			resolveAuthors(refs, first, last)
		}

		rows := export.BuildRows(refs, first, last)

		if lookupXLSXPath != "" {
			if err := export.WriteXLSX(lookupXLSXPath, rows); err != nil {
				exitWithError(ExitError, "writing xlsx: %v", err)
			}
			if humanOutput {
				outputHuman("Wrote %d references to %s\n", len(rows), lookupXLSXPath)
			}
		}
		if lookupCSVPath != "" {
			f, err := os.Create(lookupCSVPath)
			if err != nil {
				exitWithError(ExitError, "creating %s: %v", lookupCSVPath, err)
			}
			err = export.WriteCSV(f, rows)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				exitWithError(ExitError, "writing csv: %v", err)
			}
			if humanOutput {
				outputHuman("Wrote %d references to %s\n", len(rows), lookupCSVPath)
			}
		}
		if lookupXLSXPath != "" || lookupCSVPath != "" {
			return
		}

		if humanOutput {
			printRowsHuman(rows)
			return
		}
		if err := outputJSON(rows); err != nil {
			exitWithError(ExitError, "encoding output: %v", err)
		}
	},
}

func init() {
	// Load .env file if present (for S2_API_KEY)
	_ = godotenv.Load()

	lookupCmd.Flags().IntVar(&lookupMaxRefs, "max-refs", 0, "Limit to the first N references (0 = all)")
	lookupCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "Only read the first N pages of a PDF (0 = all)")
	lookupCmd.Flags().BoolVar(&lookupNoLookup, "no-lookup", false, "Skip API lookups, export extraction results only")
	lookupCmd.Flags().BoolVar(&lookupNoCache, "no-cache", false, "Bypass the local author cache")
	lookupCmd.Flags().StringVar(&lookupXLSXPath, "xlsx", "", "Write results to an xlsx workbook at this path")
	lookupCmd.Flags().StringVar(&lookupCSVPath, "csv", "", "Write results as CSV to this path")
	rootCmd.AddCommand(lookupCmd)
}

// newLookupService builds the author lookup service from config.
// Cache failures degrade to uncached lookups rather than aborting.
func newLookupService() *lookup.Service {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitError, "loading config: %v", err)
	}

	var s2Opts []lookup.S2Option
	if cfg.S2APIKey != "" {
		s2Opts = append(s2Opts, lookup.WithAPIKey(cfg.S2APIKey))
	}
	if cfg.RateLimit > 0 {
		s2Opts = append(s2Opts, lookup.WithRateLimit(cfg.RateLimit))
	}
	if cfg.RequestTimeout > 0 {
		s2Opts = append(s2Opts, lookup.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		}))
	}

	var cache *lookup.Cache
	if !lookupNoCache {
		cache, err = lookup.OpenCache(cfg.DefaultCachePath())
		if err != nil && humanOutput {
			outputHuman("warning: author cache unavailable: %v\n", err)
		}
	}

	return lookup.NewService(lookup.NewS2Client(s2Opts...), lookup.NewDBLPClient(""), cache)
}

// resolveAuthors looks up the first and last author of each reference,
// keyed by reference index. Individual misses are skipped; only
// interruption aborts the run.
func resolveAuthors(refs []bib.Reference, first, last map[int]*lookup.AuthorInfo) {
	svc := newLookupService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for i, ref := range refs {
		for _, target := range []struct {
			name string
			dest map[int]*lookup.AuthorInfo
		}{
			{ref.FirstAuthor, first},
			{ref.LastAuthor, last},
		} {
			if target.name == "" {
				continue
			}
			// Same person when the reference has a single author.
			if target.name == ref.FirstAuthor {
				if info, ok := first[i]; ok {
					target.dest[i] = info
					continue
				}
			}
			info, err := svc.Lookup(ctx, lookup.Request{
				AuthorName: target.name,
				PaperTitle: ref.Title,
				PaperYear:  ref.Year,
				RawText:    ref.RawText,
			})
			if err != nil {
				if ctx.Err() != nil {
					exitWithError(ExitLookupError, "lookup interrupted")
				}
				continue
			}
			if info != nil {
				target.dest[i] = info
			}
		}
	}
}

func printRowsHuman(rows []export.Row) {
	outputHuman("Processed %d references\n\n", len(rows))
	for i, r := range rows {
		outputHuman("%d. [%s] %s (%s)\n", i+1, r.CitationKey, truncateString(orDash(r.Title), TitleMaxLen), orDash(r.Year))
		outputHuman("   first: %s", orDash(r.FirstAuthor))
		if r.FirstAffiliation != "" {
			outputHuman(" (%s)", r.FirstAffiliation)
		}
		outputHuman("\n   last:  %s", orDash(r.LastAuthor))
		if r.LastAffiliation != "" {
			outputHuman(" (%s)", r.LastAffiliation)
		}
		outputHuman("\n\n")
	}
}
