package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/wannabet/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	state TEXT NOT NULL,
	saved_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS current_game (
	slot INTEGER PRIMARY KEY CHECK (slot = 0),
	game_id TEXT NOT NULL
);
`

// SQLiteConfig holds configuration for the SQLite game repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps state in process
	Path string

	// Logger receives decode failures; defaults to slog.Default()
	Logger *slog.Logger
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLite opens (or creates) the database and its tables
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &sqliteRepository{
		db:     db,
		logger: logger.With("repository", "game", "store", "sqlite"),
	}, nil
}

// Close releases the database handle
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

// SaveGame upserts the game row and points the current slot at it
func (r *sqliteRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, state, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		input.Game.ID, string(gameJSON), input.Game.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO current_game (slot, game_id) VALUES (0, ?)`, input.Game.ID)
	if err != nil {
		return fmt.Errorf("failed to mark current game: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID
func (r *sqliteRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var state string
	err := r.db.QueryRowContext(ctx, `SELECT state FROM games WHERE id = ?`, input.GameID).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(r.logger, input.GameID, []byte(state))
}

// GetCurrentGame retrieves the game the current slot points at
func (r *sqliteRepository) GetCurrentGame(ctx context.Context) (*models.Game, error) {
	var gameID string
	err := r.db.QueryRowContext(ctx, `SELECT game_id FROM current_game WHERE slot = 0`).Scan(&gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get current game ID: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{GameID: gameID})
}

// DeleteGame removes the game and clears the current slot if it pointed at it
func (r *sqliteRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, input.GameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM current_game WHERE game_id = ?`, input.GameID); err != nil {
		return fmt.Errorf("failed to clear current game: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}
