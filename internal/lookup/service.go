package lookup

import (
	"context"
	"errors"
	"strings"
)

// Service resolves author information by querying sources in confidence
// order: Semantic Scholar (paper-anchored first, then direct author search)
// followed by DBLP. Results are cached when a Cache is attached so repeated
// runs over the same bibliography skip the network.
type Service struct {
	s2    *S2Client
	dblp  *DBLPClient
	cache *Cache
}

// NewService creates a Service. Either client may be nil to disable that
// source; cache may be nil to disable caching.
func NewService(s2 *S2Client, dblp *DBLPClient, cache *Cache) *Service {
	return &Service{s2: s2, dblp: dblp, cache: cache}
}

// Lookup resolves one author. Misses from individual sources are not
// errors: the best available AuthorInfo is returned, possibly carrying only
// the name. Only context cancellation aborts the chain.
func (s *Service) Lookup(ctx context.Context, req Request) (*AuthorInfo, error) {
	if s.cache != nil {
		if info, err := s.cache.Get(req.AuthorName); err == nil && info != nil {
			return info, nil
		}
	}

	best := &AuthorInfo{Name: req.AuthorName}

	if s.s2 != nil {
		info, err := s.lookupS2(ctx, req)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if info != nil && info.Affiliation != "" {
			best = info
		}
	}

	if best.Affiliation == "" && s.dblp != nil {
		info, err := s.dblp.SearchAuthor(ctx, req.AuthorName)
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err == nil && info.Affiliation != "" {
			best = info
		}
	}

	if s.cache != nil && best.Affiliation != "" {
		// Cache write failures are non-fatal; the lookup succeeded.
		_ = s.cache.Put(req.AuthorName, best)
	}

	return best, nil
}

// lookupS2 resolves an author via Semantic Scholar. When paper context is
// available the paper is searched first and its author list matched by
// name, which disambiguates common names far better than a bare author
// search.
func (s *Service) lookupS2(ctx context.Context, req Request) (*AuthorInfo, error) {
	if req.PaperTitle != "" {
		paper, err := s.s2.SearchPaper(ctx, req.PaperTitle, req.PaperYear)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if paper != nil {
			for _, a := range paper.Authors {
				if !namesMatch(a.Name, req.AuthorName) || a.AuthorID == "" {
					continue
				}
				detail, err := s.s2.GetAuthor(ctx, a.AuthorID)
				if err != nil {
					break
				}
				return s2AuthorInfo(detail, 0.9), nil
			}
		}
	}

	author, err := s.s2.SearchAuthor(ctx, req.AuthorName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s2AuthorInfo(author, 0.8), nil
}

func s2AuthorInfo(a *s2Author, confidence float64) *AuthorInfo {
	info := &AuthorInfo{
		Name:       a.Name,
		Confidence: confidence,
		Source:     "s2",
	}
	if len(a.Affiliations) > 0 {
		info.Affiliation = a.Affiliations[0]
	}
	if a.Homepage != "" {
		info.URL = a.Homepage
	} else {
		info.URL = a.URL
	}
	return info
}

// namesMatch reports whether two author names likely refer to the same
// person: case-insensitive match on last token (usually the surname) or on
// the first token.
func namesMatch(a, b string) bool {
	ta := nameTokens(a)
	tb := nameTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	if ta[len(ta)-1] == tb[len(tb)-1] {
		return true
	}
	return ta[0] == tb[0]
}

func nameTokens(name string) []string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, ".", "")
	name = strings.ReplaceAll(name, ",", " ")
	return strings.Fields(name)
}
