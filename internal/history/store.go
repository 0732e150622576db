// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists past searches and their results in a local
// SQLite database so a researcher can revisit earlier work without
// re-querying the sources.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/briefcase/pkg/types"
)

const dbFile = "history.db"

// ErrNoEntry is returned when no recorded search matches the term.
var ErrNoEntry = errors.New("no history entry")

// Entry is one recorded search.
type Entry struct {
	Term       string             `json:"term"`
	Sources    []string           `json:"sources"`
	Results    []types.CaseResult `json:"results"`
	SearchedAt time.Time          `json:"searchedAt"`
}

// ResultSet converts the entry to the canonical result-set shape consumed
// by JSON output. Multi-source searches join their source ids with commas.
func (e Entry) ResultSet() types.SearchResultSet {
	return types.SearchResultSet{
		SearchTerm: e.Term,
		SourceID:   strings.Join(e.Sources, ","),
		Results:    e.Results,
		Timestamp:  e.SearchedAt,
	}
}

// Store manages the search-history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 50
	}

	s := &Store{db: db, maxEntries: maxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS searches (
		term TEXT PRIMARY KEY,
		sources TEXT,
		results TEXT NOT NULL,
		searched_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record stores a search keyed by its term. Re-running a search replaces
// the earlier entry for the same term, and entries beyond the configured
// cap are evicted oldest first.
func (s *Store) Record(entry Entry) error {
	sources, err := json.Marshal(entry.Sources)
	if err != nil {
		return fmt.Errorf("encoding sources: %w", err)
	}
	results, err := json.Marshal(entry.Results)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	at := entry.SearchedAt
	if at.IsZero() {
		at = time.Now()
	}

	_, err = s.db.Exec(`INSERT INTO searches (term, sources, results, searched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(term) DO UPDATE SET
			sources = excluded.sources,
			results = excluded.results,
			searched_at = excluded.searched_at`,
		entry.Term, string(sources), string(results), at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}

	_, err = s.db.Exec(`DELETE FROM searches WHERE term NOT IN (
		SELECT term FROM searches ORDER BY searched_at DESC LIMIT ?)`, s.maxEntries)
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}
	return nil
}

// Get returns the recorded search for an exact term.
func (s *Store) Get(term string) (*Entry, error) {
	row := s.db.QueryRow(`SELECT term, sources, results, searched_at
		FROM searches WHERE term = ?`, term)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("term %q: %w", term, ErrNoEntry)
	}
	return entry, err
}

// Recent returns up to n recorded searches, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = s.maxEntries
	}
	rows, err := s.db.Query(`SELECT term, sources, results, searched_at
		FROM searches ORDER BY searched_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Clear removes all recorded searches.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM searches`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var sources, results, searchedAt string
	if err := row.Scan(&entry.Term, &sources, &results, &searchedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(sources), &entry.Sources); err != nil {
		return nil, fmt.Errorf("decoding sources: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &entry.Results); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	t, err := time.Parse(time.RFC3339, searchedAt)
	if err != nil {
		return nil, fmt.Errorf("decoding timestamp: %w", err)
	}
	entry.SearchedAt = t
	return &entry, nil
}
