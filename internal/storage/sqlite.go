// Package storage provides SQLite-based persistence for player identity,
// high scores and game history.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Player is a persistent player record, keyed by unique name.
type Player struct {
	ID           int64
	Name         string
	HighScore    int
	TotalGames   int
	CreatedAt    time.Time
	LastPlayedAt time.Time
}

// GameResult is one finished run to be recorded against a player.
type GameResult struct {
	PlayerID   int64
	Score      int
	Difficulty int
	Duration   time.Duration
	Avoided    int
}

// ResultSummary reports how a recorded run relates to the player's history.
type ResultSummary struct {
	// HighScore is the player's best score after the run was recorded.
	HighScore int
	// IsNewRecord is true when this run strictly beat the previous best.
	IsNewRecord bool
}

// HistoryEntry is one row of a player's past games, newest first.
type HistoryEntry struct {
	ID         int64
	Score      int
	Difficulty int
	Duration   time.Duration
	Avoided    int
	PlayedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			high_score INTEGER NOT NULL DEFAULT 0,
			total_games INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_played_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_players_leaderboard ON players(high_score DESC);

		CREATE TABLE IF NOT EXISTS game_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL REFERENCES players(id),
			score INTEGER NOT NULL,
			difficulty INTEGER NOT NULL DEFAULT 1,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			obstacles_avoided INTEGER NOT NULL DEFAULT 0,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_history_player ON game_history(player_id, played_at DESC);
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

// GetOrCreatePlayer looks a player up by name, creating the record on
// first sight. Names are case-sensitive and unique.
func (s *Store) GetOrCreatePlayer(name string) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("storage: player name must not be empty")
	}

	p, err := s.playerByName(name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	// Lost races are absorbed by the UNIQUE constraint; the re-read below
	// returns whichever insert won.
	_, err = s.db.Exec(
		"INSERT INTO players (name) VALUES (?) ON CONFLICT(name) DO NOTHING",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot create player: %w", err)
	}

	p, err = s.playerByName(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("storage: player %q vanished after insert", name)
	}
	return p, nil
}

func (s *Store) playerByName(name string) (*Player, error) {
	var p Player
	var createdAt, lastPlayed any

	err := s.db.QueryRow(
		`SELECT id, name, high_score, total_games, created_at, last_played_at
		 FROM players
		 WHERE name = ?`,
		name,
	).Scan(&p.ID, &p.Name, &p.HighScore, &p.TotalGames, &createdAt, &lastPlayed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}

	p.CreatedAt = parseDBTime(createdAt)
	p.LastPlayedAt = parseDBTime(lastPlayed)
	return &p, nil
}

// PlayerByID retrieves a player record by primary key.
// Returns nil if the player does not exist.
func (s *Store) PlayerByID(id int64) (*Player, error) {
	var p Player
	var createdAt, lastPlayed any

	err := s.db.QueryRow(
		`SELECT id, name, high_score, total_games, created_at, last_played_at
		 FROM players
		 WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.HighScore, &p.TotalGames, &createdAt, &lastPlayed)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}

	p.CreatedAt = parseDBTime(createdAt)
	p.LastPlayedAt = parseDBTime(lastPlayed)
	return &p, nil
}

// RecordResult appends a run to the player's history and updates the
// high score and game counters. Both writes happen in one transaction.
func (s *Store) RecordResult(r GameResult) (ResultSummary, error) {
	var summary ResultSummary

	tx, err := s.db.Begin()
	if err != nil {
		return summary, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var prevHigh int
	err = tx.QueryRow(
		"SELECT high_score FROM players WHERE id = ?", r.PlayerID,
	).Scan(&prevHigh)
	if err == sql.ErrNoRows {
		return summary, fmt.Errorf("storage: unknown player id %d", r.PlayerID)
	}
	if err != nil {
		return summary, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO game_history (player_id, score, difficulty, duration_secs, obstacles_avoided)
		 VALUES (?, ?, ?, ?, ?)`,
		r.PlayerID, r.Score, r.Difficulty, int(r.Duration.Seconds()), r.Avoided,
	)
	if err != nil {
		return summary, fmt.Errorf("storage: cannot save game result: %w", err)
	}

	summary.HighScore = prevHigh
	summary.IsNewRecord = r.Score > prevHigh
	if summary.IsNewRecord {
		summary.HighScore = r.Score
	}

	_, err = tx.Exec(
		`UPDATE players
		 SET high_score = ?, total_games = total_games + 1, last_played_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		summary.HighScore, r.PlayerID,
	)
	if err != nil {
		return summary, fmt.Errorf("storage: cannot update player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("storage: cannot commit result: %w", err)
	}

	return summary, nil
}

// Leaderboard retrieves the top N players by high score, best first.
// Players who never finished a game are excluded.
func (s *Store) Leaderboard(limit int) ([]Player, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, high_score, total_games, created_at, last_played_at
		 FROM players
		 WHERE total_games > 0
		 ORDER BY high_score DESC, last_played_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var createdAt, lastPlayed any
		if err := rows.Scan(&p.ID, &p.Name, &p.HighScore, &p.TotalGames, &createdAt, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseDBTime(createdAt)
		p.LastPlayedAt = parseDBTime(lastPlayed)
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return players, nil
}

// History retrieves a player's most recent games, newest first.
func (s *Store) History(playerID int64, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, difficulty, duration_secs, obstacles_avoided, played_at
		 FROM game_history
		 WHERE player_id = ?
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var secs int
		var playedAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Difficulty, &secs, &e.Avoided, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(secs) * time.Second
		e.PlayedAt = parseDBTime(playedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseDBTime handles the driver returning DATETIME columns as either
// time.Time or string, and NULL as nil.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
