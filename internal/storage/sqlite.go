// Package storage provides SQLite-based persistence for scores and
// completion times. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Won       bool
	FinishMs  int64 // Completion time, zero unless Won
	CreatedAt time.Time
}

// Run is what the platform records when a run ends.
type Run struct {
	GameID   string
	Score    int
	Won      bool
	FinishMs int64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

// migrate creates the schema. Databases from before completion times
// existed get the two new columns added in place.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			finish_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	for _, col := range []string{"won", "finish_ms"} {
		has, err := s.hasColumn("scores", col)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE scores ADD COLUMN %s INTEGER NOT NULL DEFAULT 0", col)); err != nil {
			return fmt.Errorf("add column %s: %w", col, err)
		}
	}

	_, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_scores_best_time ON scores(game_id, won, finish_ms)`)
	return err
}

func (s *Store) hasColumn(table, column string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	return n > 0, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a plain score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(Run{GameID: gameID, Score: score})
}

// SaveRun records a finished run. The completion time is only kept for
// won runs.
func (s *Store) SaveRun(run Run) (int64, error) {
	finish := run.FinishMs
	if !run.Won || finish < 0 {
		finish = 0
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, won, finish_ms) VALUES (?, ?, ?, ?)",
		run.GameID, run.Score, run.Won, finish,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const (
	entryColumns = `id, game_id, score, won, finish_ms, created_at`
	defaultLimit = 10
)

// TopScores returns the limit best runs for a game by score. Equal scores
// keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.listEntries("top scores",
		`WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, orDefault(limit))
}

// BestTimes returns the limit fastest won runs for a game. Equal times go
// to the higher score.
func (s *Store) BestTimes(gameID string, limit int) ([]ScoreEntry, error) {
	return s.listEntries("best times",
		`WHERE game_id = ? AND won = 1 ORDER BY finish_ms ASC, score DESC, id ASC LIMIT ?`,
		gameID, orDefault(limit))
}

// AllScores returns every run for a game, best score first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.listEntries("all scores",
		`WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID)
}

func orDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

// listEntries runs SELECT entryColumns FROM scores with the given tail.
func (s *Store) listEntries(what, tail string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(`SELECT `+entryColumns+` FROM scores `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query %s: %w", what, err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Won, &e.FinishMs, &created); err != nil {
			return nil, fmt.Errorf("storage: scan %s: %w", what, err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", what, err)
	}
	return entries, nil
}

// parseTime handles both driver representations of DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score recorded for a game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	v, _, err := s.aggregate("MAX(score)", "game_id = ?", gameID)
	return int(v), err
}

// BestTime returns the fastest clear of a game. ok is false when the game
// was never won.
func (s *Store) BestTime(gameID string) (ms int64, ok bool, err error) {
	return s.aggregate("MIN(finish_ms)", "game_id = ? AND won = 1", gameID)
}

// aggregate evaluates one SQL aggregate over the matching rows. ok is false
// when no row matched.
func (s *Store) aggregate(expr, where string, args ...any) (int64, bool, error) {
	var v sql.NullInt64
	if err := s.db.QueryRow(`SELECT `+expr+` FROM scores WHERE `+where, args...).Scan(&v); err != nil {
		return 0, false, fmt.Errorf("storage: %s: %w", expr, err)
	}
	return v.Int64, v.Valid, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestTimeMs int64 // Zero when never won
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN finish_ms END), 0),
		        MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore,
		&stats.TotalScore, &stats.BestTimeMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
