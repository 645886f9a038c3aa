package game

import (
	"errors"

	"github.com/KirkDiggler/wannabet/internal/models"
)

// ErrGameNotFound is returned when there is no usable saved state for a game
var ErrGameNotFound = errors.New("game not found")

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}
