package lookup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a persistent author-info cache backed by SQLite, keyed by
// normalized author name. Affiliation data moves slowly, so entries are
// reused across runs until they expire.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// DefaultCacheTTL is how long cached author info stays fresh.
const DefaultCacheTTL = 30 * 24 * time.Hour

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	const ddl = `CREATE TABLE IF NOT EXISTS author_cache (
  name TEXT PRIMARY KEY,
  info TEXT NOT NULL,
  fetched_at TEXT NOT NULL
)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db, ttl: DefaultCacheTTL}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached info for an author, or (nil, nil) on a miss or an
// expired entry.
func (c *Cache) Get(name string) (*AuthorInfo, error) {
	var infoJSON, fetchedAt string
	err := c.db.QueryRow(
		"SELECT info, fetched_at FROM author_cache WHERE name = ?",
		cacheKey(name),
	).Scan(&infoJSON, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(t) > c.ttl {
		return nil, nil
	}

	var info AuthorInfo
	if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
		return nil, fmt.Errorf("decoding cached info: %w", err)
	}
	info.Source = "cache"
	return &info, nil
}

// Put stores info for an author, replacing any existing entry.
func (c *Cache) Put(name string, info *AuthorInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding info: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO author_cache (name, info, fetched_at) VALUES (?, ?, ?)`,
		cacheKey(name), string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

// cacheKey normalizes an author name for use as a cache key.
func cacheKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
