// Package history persists plays observed by the watch command in a
// local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages a persistent log of observed plays using SQLite
type Store struct {
	db *sql.DB
}

// Play represents a single recorded play
type Play struct {
	ID       int64
	Artist   string
	Album    string
	Track    string
	Image    string
	PlayedAt time.Time
}

// Open creates a play history store backed by SQLite
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool size to 1 for in-memory databases to ensure consistency
	// For file-based databases, this still works well for our use case
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Write-Ahead Logging for concurrent access
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	// Create the schema. The unique constraint makes recording
	// idempotent: the poller sees the same play on every tick until
	// the next track starts.
	schema := `
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			artist TEXT NOT NULL,
			album TEXT,
			track TEXT NOT NULL,
			image TEXT,
			played_at INTEGER NOT NULL,
			created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
			UNIQUE(artist, track, played_at)
		);

		CREATE INDEX IF NOT EXISTS idx_played_at ON plays(played_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a play. Returns true if the play was newly inserted,
// false if an identical play was already recorded.
func (s *Store) Record(ctx context.Context, play Play) (bool, error) {
	query := `
		INSERT OR IGNORE INTO plays (artist, album, track, image, played_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		play.Artist,
		play.Album,
		play.Track,
		play.Image,
		play.PlayedAt.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert play: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	return rows > 0, nil
}

// Recent returns the most recently played entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Play, error) {
	query := `
		SELECT id, artist, album, track, image, played_at
		FROM plays
		ORDER BY played_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var play Play
		var playedAt int64
		if err := rows.Scan(&play.ID, &play.Artist, &play.Album, &play.Track, &play.Image, &playedAt); err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		play.PlayedAt = time.Unix(playedAt, 0)
		plays = append(plays, play)
	}

	return plays, rows.Err()
}

// Count returns the total number of recorded plays
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM plays").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count plays: %w", err)
	}
	return count, nil
}
