// Package lookup resolves author affiliations for parsed references by
// querying bibliographic APIs (Semantic Scholar, DBLP) in confidence order.
package lookup

// AuthorInfo holds what the lookup sources know about one author.
type AuthorInfo struct {
	Name        string  `json:"name"`
	Affiliation string  `json:"affiliation,omitempty"`
	Department  string  `json:"department,omitempty"`
	Email       string  `json:"email,omitempty"`
	URL         string  `json:"url,omitempty"`
	Confidence  float64 `json:"confidence"`
	Source      string  `json:"source,omitempty"` // "s2", "dblp", "cache"
}

// Request identifies an author to resolve, with the paper context that
// helps disambiguate common names.
type Request struct {
	AuthorName string
	PaperTitle string
	PaperYear  string
	RawText    string // full entry text, kept as context for manual review
}

// s2Paper is the Semantic Scholar paper search result shape we consume.
type s2Paper struct {
	PaperID string `json:"paperId"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Venue   string `json:"venue"`
	Authors []struct {
		AuthorID string `json:"authorId"`
		Name     string `json:"name"`
	} `json:"authors"`
}

// s2Author is the Semantic Scholar author detail shape we consume.
type s2Author struct {
	AuthorID     string   `json:"authorId"`
	Name         string   `json:"name"`
	Affiliations []string `json:"affiliations"`
	Homepage     string   `json:"homepage"`
	URL          string   `json:"url"`
	PaperCount   int      `json:"paperCount"`
}
