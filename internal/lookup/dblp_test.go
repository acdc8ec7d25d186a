package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func newTestDBLP(t *testing.T, handler http.HandlerFunc) *DBLPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewDBLPClient(srv.URL)
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestDBLPSearchAuthor(t *testing.T) {
	client := newTestDBLP(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Geoffrey Hinton" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`{"result":{"hits":{"hit":[{"info":{"author":"Geoffrey E. Hinton","url":"https://dblp.org/pid/10/3248","notes":{"note":{"@type":"affiliation","text":"University of Toronto"}}}}]}}}`))
	})

	info, err := client.SearchAuthor(context.Background(), "Geoffrey Hinton")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Name != "Geoffrey E. Hinton" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Affiliation != "University of Toronto" {
		t.Errorf("affiliation = %q", info.Affiliation)
	}
	if info.Source != "dblp" {
		t.Errorf("source = %q", info.Source)
	}
	if info.Confidence != 0.7 {
		t.Errorf("confidence = %v", info.Confidence)
	}
}

func TestDBLPSearchAuthorNoteArray(t *testing.T) {
	client := newTestDBLP(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"hits":{"hit":[{"info":{"author":"Jane Doe","url":"u","notes":{"note":[{"@type":"award","text":"x"},{"@type":"affiliation","text":"MIT"}]}}}]}}}`))
	})

	info, err := client.SearchAuthor(context.Background(), "Jane Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Affiliation != "MIT" {
		t.Errorf("affiliation = %q", info.Affiliation)
	}
}

func TestDBLPSearchAuthorNoHits(t *testing.T) {
	client := newTestDBLP(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"hits":{"hit":[]}}}`))
	})

	_, err := client.SearchAuthor(context.Background(), "Nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDBLPRateLimitedStatus(t *testing.T) {
	client := newTestDBLP(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.SearchAuthor(context.Background(), "anyone")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestAffiliationFromNotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"single affiliation", `{"note":{"@type":"affiliation","text":"CMU"}}`, "CMU"},
		{"single non-affiliation", `{"note":{"@type":"award","text":"x"}}`, ""},
		{"array with affiliation", `{"note":[{"@type":"award","text":"x"},{"@type":"affiliation","text":"CMU"}]}`, "CMU"},
		{"array without affiliation", `{"note":[{"@type":"award","text":"x"}]}`, ""},
		{"malformed", `not json`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := affiliationFromNotes([]byte(tt.raw))
			if got != tt.want {
				t.Errorf("affiliationFromNotes(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
