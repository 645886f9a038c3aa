package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Key for the remembered players hash, keyed by lower-cased name
const playersKey = "wannabet:players"

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Language selects the collation for name ordering; defaults to Swedish
	Language language.Tag
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	language language.Tag
}

// NewRedis creates a new Redis-backed player repository
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

	tag := cfg.Language
	if tag == language.Und {
		tag = language.Swedish
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		language: tag,
	}, nil
}

type rememberedPlayer struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// RememberPlayers stores trimmed, non-blank names. A name already remembered
// under a different case is replaced by the newer spelling and age.
func (r *redisRepository) RememberPlayers(ctx context.Context, input *RememberPlayersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	fields := make(map[string]interface{})
	for _, p := range input.Players {
		if p == nil {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}

		data, err := json.Marshal(rememberedPlayer{Name: name, Age: p.Age})
		if err != nil {
			return fmt.Errorf("failed to marshal player %s: %w", name, err)
		}
		fields[strings.ToLower(name)] = data
	}

	if len(fields) == 0 {
		return nil
	}

	if err := r.client.HSet(ctx, playersKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to remember players: %w", err)
	}

	return nil
}

// ListPlayers returns remembered players sorted by the configured collation
func (r *redisRepository) ListPlayers(ctx context.Context) (*ListPlayersOutput, error) {
	values, err := r.client.HVals(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]*models.Player, 0, len(values))
	names := make([]string, 0, len(values))
	byName := make(map[string]*models.Player, len(values))
	for _, v := range values {
		var rp rememberedPlayer
		if err := json.Unmarshal([]byte(v), &rp); err != nil {
			// Skip entries written by something else
			continue
		}
		if rp.Name == "" {
			continue
		}
		byName[rp.Name] = &models.Player{Name: rp.Name, Age: rp.Age}
		names = append(names, rp.Name)
	}

	collate.New(r.language, collate.IgnoreCase).SortStrings(names)
	for _, n := range names {
		players = append(players, byName[n])
	}

	return &ListPlayersOutput{Players: players}, nil
}

// ForgetPlayer removes a remembered player, matching the name case-insensitively
func (r *redisRepository) ForgetPlayer(ctx context.Context, input *ForgetPlayerInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return errors.New("input and name cannot be empty")
	}

	key := strings.ToLower(strings.TrimSpace(input.Name))
	if err := r.client.HDel(ctx, playersKey, key).Err(); err != nil {
		return fmt.Errorf("failed to forget player: %w", err)
	}

	return nil
}
