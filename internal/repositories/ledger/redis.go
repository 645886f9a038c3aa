package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for a game's ledger list
	gameLedgerKeyPrefix = "wannabet:ledger:"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendEntry pushes an entry onto the game's ledger list
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("ledger entry ID cannot be empty")
	}
	if entry.GameID == "" {
		return errors.New("ledger entry game ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	if err := r.client.RPush(ctx, gameLedgerKeyPrefix+entry.GameID, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return nil
}

// ListEntries retrieves all ledger entries for a game
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	values, err := r.client.LRange(ctx, gameLedgerKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(values))
	for i, v := range values {
		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry %d: %w", i, err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}

// DeleteEntries removes the ledger list of a game
func (r *redisRepository) DeleteEntries(ctx context.Context, input *DeleteEntriesInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if err := r.client.Del(ctx, gameLedgerKeyPrefix+input.GameID).Err(); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}

	return nil
}
