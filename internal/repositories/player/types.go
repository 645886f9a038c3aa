package player

import "github.com/KirkDiggler/wannabet/internal/models"

// RememberPlayersInput contains the roster to remember
type RememberPlayersInput struct {
	Players []*models.Player
}

// ListPlayersOutput contains the remembered players
type ListPlayersOutput struct {
	// Players carries name and last known age; coins are always zero
	Players []*models.Player
}

// ForgetPlayerInput contains parameters for forgetting a player
type ForgetPlayerInput struct {
	Name string
}
