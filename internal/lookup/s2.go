package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// S2BaseURL is the Semantic Scholar Graph API base URL.
	S2BaseURL = "https://api.semanticscholar.org/graph/v1"

	// S2RateLimit is 1 request per second, the unauthenticated quota.
	// An API key raises the quota upstream but the client stays polite.
	S2RateLimit = 1.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	paperSearchFields  = "title,authors,year,venue"
	authorDetailFields = "name,affiliations,url,homepage,paperCount"
)

// S2Client is a rate-limited client for the Semantic Scholar Graph API.
type S2Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// S2Option configures an S2Client.
type S2Option func(*S2Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) S2Option {
	return func(c *S2Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) S2Option {
	return func(c *S2Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) S2Option {
	return func(c *S2Client) {
		c.baseURL = u
	}
}

// WithRateLimit overrides the request rate limit.
func WithRateLimit(perSec float64) S2Option {
	return func(c *S2Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

// NewS2Client creates a Semantic Scholar API client. The S2_API_KEY
// environment variable is picked up automatically; options override it.
func NewS2Client(opts ...S2Option) *S2Client {
	c := &S2Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(S2RateLimit), 1),
		baseURL:    S2BaseURL,
	}

	if key := os.Getenv("S2_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *S2Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: HTTP %d", ErrInvalidResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// SearchPaper searches for a paper by title (and optionally year) and
// returns the best match.
func (c *S2Client) SearchPaper(ctx context.Context, title, year string) (*s2Paper, error) {
	query := title
	if year != "" {
		query = title + " " + year
	}

	params := url.Values{
		"query":  {query},
		"limit":  {strconv.Itoa(5)},
		"fields": {paperSearchFields},
	}

	var result struct {
		Data []s2Paper `json:"data"`
	}
	if err := c.get(ctx, "/paper/search", params, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, ErrNotFound
	}
	return &result.Data[0], nil
}

// SearchAuthor searches for an author by name and returns the best match.
func (c *S2Client) SearchAuthor(ctx context.Context, name string) (*s2Author, error) {
	params := url.Values{
		"query":  {name},
		"limit":  {strconv.Itoa(5)},
		"fields": {authorDetailFields},
	}

	var result struct {
		Data []s2Author `json:"data"`
	}
	if err := c.get(ctx, "/author/search", params, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, ErrNotFound
	}
	return &result.Data[0], nil
}

// GetAuthor fetches detailed author information by S2 author ID.
func (c *S2Client) GetAuthor(ctx context.Context, authorID string) (*s2Author, error) {
	params := url.Values{
		"fields": {authorDetailFields},
	}

	var author s2Author
	if err := c.get(ctx, "/author/"+url.PathEscape(authorID), params, &author); err != nil {
		return nil, err
	}
	if author.AuthorID == "" {
		return nil, ErrNotFound
	}
	return &author, nil
}
