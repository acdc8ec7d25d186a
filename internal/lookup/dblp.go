package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// DBLPBaseURL is the DBLP author search API endpoint.
const DBLPBaseURL = "https://dblp.org/search/author/api"

// DBLPClient queries the DBLP author search API. DBLP needs no key; the
// limiter keeps the client within the published courtesy rate.
type DBLPClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewDBLPClient creates a DBLP client. baseURL overrides the endpoint when
// non-empty (for testing).
func NewDBLPClient(baseURL string) *DBLPClient {
	if baseURL == "" {
		baseURL = DBLPBaseURL
	}
	return &DBLPClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(2), 1),
		baseURL:    baseURL,
	}
}

// dblpResult is the subset of the DBLP response we consume. The notes field
// carries affiliations; DBLP emits it as either a single object or an
// array, so it is decoded leniently.
type dblpResult struct {
	Result struct {
		Hits struct {
			Hit []struct {
				Info struct {
					Author string          `json:"author"`
					URL    string          `json:"url"`
					Notes  json.RawMessage `json:"notes"`
				} `json:"info"`
			} `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

type dblpNote struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// SearchAuthor looks up an author on DBLP and returns name, profile URL and
// any affiliation note.
func (c *DBLPClient) SearchAuthor(ctx context.Context, name string) (*AuthorInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + "?" + url.Values{
		"q":      {name},
		"format": {"json"},
		"h":      {"5"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrInvalidResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	var result dblpResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	hits := result.Result.Hits.Hit
	if len(hits) == 0 {
		return nil, ErrNotFound
	}

	info := hits[0].Info
	author := &AuthorInfo{
		Name:       info.Author,
		URL:        info.URL,
		Confidence: 0.7,
		Source:     "dblp",
	}
	if aff := affiliationFromNotes(info.Notes); aff != "" {
		author.Affiliation = aff
	}
	return author, nil
}

// affiliationFromNotes extracts the first affiliation note from the lenient
// DBLP notes payload.
func affiliationFromNotes(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var wrapper struct {
		Note json.RawMessage `json:"note"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil || len(wrapper.Note) == 0 {
		return ""
	}

	var single dblpNote
	if err := json.Unmarshal(wrapper.Note, &single); err == nil {
		if single.Type == "affiliation" {
			return single.Text
		}
		return ""
	}

	var many []dblpNote
	if err := json.Unmarshal(wrapper.Note, &many); err == nil {
		for _, n := range many {
			if n.Type == "affiliation" {
				return n.Text
			}
		}
	}
	return ""
}
