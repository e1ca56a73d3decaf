package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rsaxena/tirepace/log"
)

// ResponseCache memoizes raw API responses on disk so a session is
// fetched over the network at most once. Entries never expire; historic
// race data does not change.
type ResponseCache struct {
	db *sql.DB
	l  *log.Logger
}

// OpenResponseCache creates (if needed) and opens the cache database
// below dir.
func OpenResponseCache(dir string) (*ResponseCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "responses.db"))
	if err != nil {
		return nil, fmt.Errorf("opening response cache: %w", err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS responses (
			url        TEXT PRIMARY KEY,
			body       BLOB NOT NULL,
			fetched_at TIMESTAMP NOT NULL
		);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing response cache: %w", err)
	}
	return &ResponseCache{db: db, l: log.Default().Named("session.cache")}, nil
}

// Get returns the cached body for url, if present.
func (c *ResponseCache) Get(url string) ([]byte, bool) {
	var body []byte
	err := c.db.QueryRow(
		`SELECT body FROM responses WHERE url = ?`, url).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false
	case err != nil:
		// a broken cache must not break the run
		c.l.Warn("cache lookup failed", log.String("url", url), log.ErrorField(err))
		return nil, false
	}
	c.l.Debug("cache hit", log.String("url", url))
	return body, true
}

func (c *ResponseCache) Put(url string, body []byte) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO responses (url, body, fetched_at) VALUES (?, ?, ?)`,
		url, body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("caching response for %s: %w", url, err)
	}
	return nil
}

func (c *ResponseCache) Close() error {
	return c.db.Close()
}
