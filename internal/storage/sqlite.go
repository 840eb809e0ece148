// Package storage provides SQLite-based persistence for player preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoPreferences is returned by LoadPreferences before anything was saved.
var ErrNoPreferences = errors.New("storage: no preferences saved")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Preferences are the menu choices remembered between runs.
type Preferences struct {
	ModeID       string
	MusicEnabled bool
	Volume       int
	UpdatedAt    time.Time
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
// Preferences live in a single row with id 1.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			mode_id TEXT NOT NULL,
			music_enabled INTEGER NOT NULL DEFAULT 1,
			volume INTEGER NOT NULL DEFAULT 64,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences stores the menu choices, replacing earlier ones.
func (s *Store) SavePreferences(p Preferences) error {
	music := 0
	if p.MusicEnabled {
		music = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO preferences (id, mode_id, music_enabled, volume, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			mode_id = excluded.mode_id,
			music_enabled = excluded.music_enabled,
			volume = excluded.volume,
			updated_at = excluded.updated_at`,
		p.ModeID, music, p.Volume,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preferences: %w", err)
	}
	return nil
}

// LoadPreferences returns the saved menu choices, or ErrNoPreferences.
func (s *Store) LoadPreferences() (Preferences, error) {
	var (
		p         Preferences
		music     int
		updatedAt any
	)
	err := s.db.QueryRow(
		"SELECT mode_id, music_enabled, volume, updated_at FROM preferences WHERE id = 1",
	).Scan(&p.ModeID, &music, &p.Volume, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Preferences{}, ErrNoPreferences
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("storage: cannot load preferences: %w", err)
	}
	p.MusicEnabled = music != 0

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		p.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			p.UpdatedAt = parsed
		}
	}
	return p, nil
}

// ResetPreferences forgets the saved menu choices.
func (s *Store) ResetPreferences() error {
	if _, err := s.db.Exec("DELETE FROM preferences"); err != nil {
		return fmt.Errorf("storage: cannot reset preferences: %w", err)
	}
	return nil
}
