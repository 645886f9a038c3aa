package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wannabet/internal/repositories/player Repository

import (
	"context"
)

// Repository defines the interface for remembered player persistence
type Repository interface {
	// RememberPlayers merges a roster into the remembered players
	RememberPlayers(ctx context.Context, input *RememberPlayersInput) error

	// ListPlayers returns remembered players in collation order
	ListPlayers(ctx context.Context) (*ListPlayersOutput, error)

	// ForgetPlayer removes a remembered player by name
	ForgetPlayer(ctx context.Context, input *ForgetPlayerInput) error
}
