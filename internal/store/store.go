// Package store persists fetched trend articles and scoring history in a
// local sqlite database, so trend snapshots survive restarts and scores can
// be reviewed later.
package store

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Article is a persisted trend article row.
type Article struct {
	ID          string
	Source      string
	Title       string
	Description string
	Published   time.Time
	FetchedAt   time.Time
}

// HistoryEntry is one recorded scoring result.
type HistoryEntry struct {
	Hashtag        string
	BusinessType   string
	Location       string
	Platform       string
	Total          float64
	Confidence     float64
	Recommendation string
	ScoredAt       time.Time
}

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS trend_articles (
			id          TEXT PRIMARY KEY,
			source      TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			published   DATETIME NOT NULL,
			fetched_at  DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trend_articles_published ON trend_articles(published DESC);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS history (
			hashtag        TEXT NOT NULL,
			business_type  TEXT NOT NULL,
			location       TEXT NOT NULL,
			platform       TEXT NOT NULL,
			total          REAL NOT NULL,
			confidence     REAL NOT NULL,
			recommendation TEXT NOT NULL,
			scored_at      DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_scored_at ON history(scored_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// ArticleID derives a stable row ID from source and title.
func ArticleID(source, title string) string {
	h := sha256.Sum256([]byte(source + "\x00" + title))
	return fmt.Sprintf("%x", h[:16])
}

func (s *Store) UpsertArticles(articles []Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO trend_articles (id, source, title, description, published, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		id := a.ID
		if id == "" {
			id = ArticleID(a.Source, a.Title)
		}
		if _, err := stmt.Exec(id, a.Source, a.Title, a.Description, a.Published, a.FetchedAt); err != nil {
			return fmt.Errorf("upserting article %s: %w", id, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ArticlesSince(since time.Time) ([]Article, error) {
	rows, err := s.readDB.Query(`
		SELECT id, source, title, description, published, fetched_at
		FROM trend_articles
		WHERE published >= ?
		ORDER BY published DESC
		LIMIT 500
	`, since)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Source, &a.Title, &a.Description, &a.Published, &a.FetchedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *Store) NeedsRefresh(interval time.Duration) bool {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = 'last_refresh'").Scan(&value)
	if err != nil {
		return true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return true
	}
	return time.Since(t) > interval
}

func (s *Store) SetLastRefresh() error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_refresh', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().Format(time.RFC3339))
	return err
}

// RecordScore appends one scoring result to the history table.
func (s *Store) RecordScore(e HistoryEntry) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO history (hashtag, business_type, location, platform, total, confidence, recommendation, scored_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Hashtag, e.BusinessType, e.Location, e.Platform, e.Total, e.Confidence, e.Recommendation, e.ScoredAt)
	return err
}

func (s *Store) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.readDB.Query(`
		SELECT hashtag, business_type, location, platform, total, confidence, recommendation, scored_at
		FROM history
		ORDER BY scored_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Hashtag, &e.BusinessType, &e.Location, &e.Platform, &e.Total, &e.Confidence, &e.Recommendation, &e.ScoredAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes trend articles and history rows older than the retention
// window. Returns the number of deleted rows.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	res, err := s.writeDB.Exec("DELETE FROM trend_articles WHERE published < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning articles: %w", err)
	}
	articles, _ := res.RowsAffected()

	res, err = s.writeDB.Exec("DELETE FROM history WHERE scored_at < ?", cutoff)
	if err != nil {
		return articles, fmt.Errorf("pruning history: %w", err)
	}
	history, _ := res.RowsAffected()

	return articles + history, nil
}

// Stats reports row counts and the database file size.
func (s *Store) Stats(dbPath string) (articles, scores int, size int64, err error) {
	if err = s.readDB.QueryRow("SELECT COUNT(*) FROM trend_articles").Scan(&articles); err != nil {
		return 0, 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	if err = s.readDB.QueryRow("SELECT COUNT(*) FROM history").Scan(&scores); err != nil {
		return 0, 0, 0, fmt.Errorf("counting history: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return articles, scores, 0, fmt.Errorf("reading db size: %w", err)
	}
	return articles, scores, info.Size(), nil
}
