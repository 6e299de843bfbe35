// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps scraped result records in a local SQLite database
// so earlier searches can be listed and filtered without fetching again.
// Only records are stored; fetched pages are never kept.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

const defaultDBPath = "scholar.db"

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	maxResults int
	log        zerolog.Logger
}

// NewStore opens or creates the archive at cfg.Path and creates the schema
// if it does not exist.
func NewStore(cfg types.ArchiveConfig, log zerolog.Logger) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = defaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		maxResults: maxResults,
		log:        log.With().Str("component", "archive").Str("path", path).Logger(),
	}

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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			url TEXT NOT NULL,
			fetched_at TEXT NOT NULL,
			result_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			search_id INTEGER NOT NULL REFERENCES searches(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			abstract TEXT NOT NULL,
			conference TEXT,
			link TEXT NOT NULL,
			pdf_link TEXT,
			domain TEXT NOT NULL,
			year TEXT,
			citations INTEGER,
			PRIMARY KEY (search_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_domain ON results(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_results_year ON results(year)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SearchRecord is one archived search.
type SearchRecord struct {
	ID          int64     `json:"id"`
	Query       string    `json:"query"`
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetched_at"`
	ResultCount int       `json:"result_count"`
}

// StoredResult is an archived record with its provenance.
type StoredResult struct {
	SearchID int64 `json:"search_id"`
	Position int   `json:"position"`
	types.ScholarResult
}

// Save stores the results of one search in a single transaction and
// returns the new search id. Positions follow the order of results.
func (s *Store) Save(ctx context.Context, query, url string, results []types.ScholarResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO searches (query, url, fetched_at, result_count) VALUES (?, ?, ?, ?)`,
		query, url, time.Now().UTC().Format(time.RFC3339Nano), len(results),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting search: %w", err)
	}
	searchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading search id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (search_id, position, title, author, abstract, conference, link, pdf_link, domain, year, citations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		_, err := stmt.ExecContext(ctx,
			searchID, i, r.Title, r.Author, r.Abstract, nullString(r.Conference),
			r.Link, nullString(r.PDFLink), r.Domain, nullString(r.Year), nullCount(r.Citations),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing search: %w", err)
	}

	s.log.Debug().Int64("search_id", searchID).Int("results", len(results)).Msg("archived search")
	return searchID, nil
}

// Searches lists archived searches, newest first.
func (s *Store) Searches(ctx context.Context, limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, url, fetched_at, result_count FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var out []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		var fetchedAt string
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.URL, &fetchedAt, &rec.ResultCount); err != nil {
			return nil, fmt.Errorf("scanning search: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, fetchedAt); err == nil {
			rec.FetchedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// QueryOptions filters archived results. Empty fields do not filter.
type QueryOptions struct {
	// Text matches title, author or abstract (case-insensitive substring).
	Text string

	Domain       string
	Year         string
	SearchID     int64
	MinCitations uint64
	Limit        int
}

// Results returns archived records matching opts, ordered by search and
// position.
func (s *Store) Results(ctx context.Context, opts QueryOptions) ([]StoredResult, error) {
	var where []string
	var args []any

	if opts.Text != "" {
		like := "%" + strings.ToLower(opts.Text) + "%"
		where = append(where, `(lower(title) LIKE ? OR lower(author) LIKE ? OR lower(abstract) LIKE ?)`)
		args = append(args, like, like, like)
	}
	if opts.Domain != "" {
		where = append(where, `domain = ?`)
		args = append(args, opts.Domain)
	}
	if opts.Year != "" {
		where = append(where, `year = ?`)
		args = append(args, opts.Year)
	}
	if opts.SearchID > 0 {
		where = append(where, `search_id = ?`)
		args = append(args, opts.SearchID)
	}
	if opts.MinCitations > 0 {
		where = append(where, `citations >= ?`)
		args = append(args, nullCount(&opts.MinCitations))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	q := `SELECT search_id, position, title, author, abstract, conference, link, pdf_link, domain, year, citations FROM results`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY search_id, position LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		var r StoredResult
		var conference, pdfLink, year sql.NullString
		var citations sql.NullInt64
		if err := rows.Scan(&r.SearchID, &r.Position, &r.Title, &r.Author, &r.Abstract,
			&conference, &r.Link, &pdfLink, &r.Domain, &year, &citations); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Conference = stringPtr(conference)
		r.PDFLink = stringPtr(pdfLink)
		r.Year = stringPtr(year)
		if citations.Valid && citations.Int64 >= 0 {
			n := uint64(citations.Int64)
			r.Citations = &n
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// nullCount stores counts beyond int64 range as NULL.
func nullCount(n *uint64) sql.NullInt64 {
	if n == nil || *n > math.MaxInt64 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
