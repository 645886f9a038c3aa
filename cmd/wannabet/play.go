package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wannabet/internal/common/clock"
	"github.com/KirkDiggler/wannabet/internal/common/uuid"
	"github.com/KirkDiggler/wannabet/internal/handlers/terminal"
	"github.com/KirkDiggler/wannabet/internal/questions"
	"github.com/KirkDiggler/wannabet/internal/random"
	gameRepo "github.com/KirkDiggler/wannabet/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/wannabet/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/wannabet/internal/repositories/player"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	gameService "github.com/KirkDiggler/wannabet/internal/services/game"
	"github.com/KirkDiggler/wannabet/internal/services/messaging"
	"github.com/KirkDiggler/wannabet/internal/wager"
)

// Play wires the stores and services together and runs one terminal session
func Play(ctx context.Context, cfg *Config) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	pool, err := questions.NewLoader(cfg.questionsDir, logger).LoadPool()
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}
	logger.Debug("questions loaded", "count", pool.Size(), "categories", len(pool.Categories()))

	redisClient, closeRedis, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRedis()

	var games gameRepo.Repository
	switch cfg.store {
	case storeSQLite:
		sqliteRepo, err := gameRepo.NewSQLite(&gameRepo.SQLiteConfig{
			Path:   cfg.sqlitePath,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to open sqlite game repository: %w", err)
		}
		defer func() {
			if err := sqliteRepo.Close(); err != nil {
				logger.Warn("closing sqlite game repository", "error", err)
			}
		}()
		games = sqliteRepo
	default:
		games, err = gameRepo.NewRedis(&gameRepo.Config{
			RedisClient: redisClient,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create game repository: %w", err)
		}
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
		Language:    cfg.languageTag(),
	})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create ledger repository: %w", err)
	}

	systemClock := &clock.DefaultClock{}
	roller := random.New(&random.Config{Seed: cfg.seed})

	generator, err := rounds.New(&rounds.Config{
		Random: roller,
		Clock:  systemClock,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create round generator: %w", err)
	}

	settlement, err := wager.NewEngine(&wager.Config{BaseReward: cfg.baseReward})
	if err != nil {
		return fmt.Errorf("failed to create settlement engine: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		WinThreshold:   cfg.winThreshold,
		GameRepo:       games,
		PlayerRepo:     players,
		LedgerRepo:     ledger,
		RoundGenerator: generator,
		QuestionPool:   pool,
		Settlement:     settlement,
		Clock:          systemClock,
		UUIDGenerator:  uuid.New(),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Random: roller,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	term, err := terminal.New(&terminal.Config{
		In:               os.Stdin,
		Out:              os.Stdout,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Classic:          cfg.classic,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// connectRedis dials the configured server. With the sqlite store and no
// reachable server, players and the ledger live in an in-process instance
// that is discarded on exit.
func connectRedis(ctx context.Context, cfg *Config, logger *slog.Logger) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := client.Ping(pingCtx).Err()
	if err == nil {
		return client, func() { _ = client.Close() }, nil
	}
	_ = client.Close()

	if cfg.store != storeSQLite {
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.redisAddr, err)
	}

	logger.Info("redis unavailable, keeping players and ledger in memory", "addr", cfg.redisAddr, "error", err)

	embedded, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start in-memory redis: %w", err)
	}
	client = redis.NewClient(&redis.Options{
		Addr: embedded.Addr(),
	})

	return client, func() {
		_ = client.Close()
		embedded.Close()
	}, nil
}
