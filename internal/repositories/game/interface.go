package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wannabet/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/wannabet/internal/models"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// SaveGame persists a game and marks it as the current game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetCurrentGame retrieves the most recently saved game
	GetCurrentGame(ctx context.Context) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
