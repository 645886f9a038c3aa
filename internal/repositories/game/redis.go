package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "wannabet:game:"
	currentGameKey = "wannabet:current_game"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Logger receives decode failures; defaults to slog.Default()
	Logger *slog.Logger
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		logger: logger.With("repository", "game", "store", "redis"),
	}, nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKeyPrefix+input.Game.ID, gameJSON, 0)
	pipe.Set(ctx, currentGameKey, input.Game.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKeyPrefix+input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(r.logger, input.GameID, []byte(gameJSON))
}

// GetCurrentGame retrieves the game most recently saved
func (r *redisRepository) GetCurrentGame(ctx context.Context) (*models.Game, error) {
	gameID, err := r.client.Get(ctx, currentGameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get current game ID: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{GameID: gameID})
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	currentID, err := r.client.Get(ctx, currentGameKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get current game ID: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKeyPrefix+input.GameID)
	if currentID == input.GameID {
		pipe.Del(ctx, currentGameKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// decodeGame unmarshals stored state. Unreadable or structurally broken state is
// reported as ErrGameNotFound so callers fall back to a fresh game.
func decodeGame(logger *slog.Logger, gameID string, data []byte) (*models.Game, error) {
	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		logger.Warn("discarding unreadable game state", "game_id", gameID, "error", err)
		return nil, ErrGameNotFound
	}

	if err := validateGame(&game); err != nil {
		logger.Warn("discarding inconsistent game state", "game_id", gameID, "error", err)
		return nil, ErrGameNotFound
	}

	return &game, nil
}

// validateGame checks the invariants a resumed game relies on
func validateGame(game *models.Game) error {
	if game.ID == "" {
		return errors.New("missing game ID")
	}
	if len(game.Players) < 2 {
		return fmt.Errorf("roster has %d players", len(game.Players))
	}
	for i, p := range game.Players {
		if p == nil {
			return fmt.Errorf("player %d is missing", i)
		}
		if p.Coins < 0 {
			return fmt.Errorf("player %d has %d coins", i, p.Coins)
		}
	}
	switch game.Status {
	case models.GameStatusActive:
		if game.WinnerIndex != models.NoWinner {
			return fmt.Errorf("active game has winner %d", game.WinnerIndex)
		}
	case models.GameStatusCompleted:
		if game.WinnerIndex < 0 || game.WinnerIndex >= len(game.Players) {
			return fmt.Errorf("winner index %d out of range", game.WinnerIndex)
		}
	default:
		return fmt.Errorf("unknown status %q", game.Status)
	}
	if len(game.RoundAssignments) != len(game.Players) {
		return fmt.Errorf("round has %d assignments for %d players", len(game.RoundAssignments), len(game.Players))
	}
	for i, a := range game.RoundAssignments {
		if a == nil || a.Question == nil {
			return fmt.Errorf("assignment %d is missing its question", i)
		}
		if a.AnswererIndex < 0 || a.AnswererIndex >= len(game.Players) ||
			a.AskerIndex < 0 || a.AskerIndex >= len(game.Players) {
			return fmt.Errorf("assignment %d references an unknown player", i)
		}
	}
	if game.CurrentQuestionInRound < 0 || game.CurrentQuestionInRound >= len(game.RoundAssignments) {
		return fmt.Errorf("question index %d out of range", game.CurrentQuestionInRound)
	}
	answerer := game.RoundAssignments[game.CurrentQuestionInRound].AnswererIndex
	bettors := make(map[int]bool, len(game.Wagers))
	for i, w := range game.Wagers {
		if w.BettorIndex < 0 || w.BettorIndex >= len(game.Players) || !w.Stance.IsValid() {
			return fmt.Errorf("wager %d is invalid", i)
		}
		if w.BettorIndex == answerer {
			return fmt.Errorf("wager %d is placed by the answerer", i)
		}
		if bettors[w.BettorIndex] {
			return fmt.Errorf("player %d holds more than one wager", w.BettorIndex)
		}
		bettors[w.BettorIndex] = true
	}
	return nil
}
