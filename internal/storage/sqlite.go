// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchEntry represents a single finished match.
type MatchEntry struct {
	ID         int64
	GameID     string // Variant played ("pong", "pong-solo")
	ScoreLeft  int
	ScoreRight int
	Winner     string // "left" or "right"
	Ticks      int    // Match duration in simulation ticks
	CreatedAt  time.Time
}

// SideStats aggregates match outcomes for one variant.
type SideStats struct {
	Matches   int
	LeftWins  int
	RightWins int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score_left INTEGER NOT NULL,
			score_right INTEGER NOT NULL,
			winner TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMatch records a finished match and returns its row ID.
func (s *Store) SaveMatch(gameID string, scoreLeft, scoreRight int, winner string, ticks int) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (game_id, score_left, score_right, winner, ticks) VALUES (?, ?, ?, ?, ?)`,
		gameID, scoreLeft, scoreRight, winner, ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}
	return res.LastInsertId()
}

// RecentMatches returns the most recent matches for a variant, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score_left, score_right, winner, ticks, created_at
		 FROM matches WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		if err := rows.Scan(&e.ID, &e.GameID, &e.ScoreLeft, &e.ScoreRight, &e.Winner, &e.Ticks, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan match: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats returns aggregate outcomes for a variant.
func (s *Store) Stats(gameID string) (SideStats, error) {
	var st SideStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'left' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'right' THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&st.Matches, &st.LeftWins, &st.RightWins)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}
