package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wannabet/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// StartGame registers a roster and deals the first round
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetGame returns a game by ID, or the current game when no ID is given
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetCurrentTurn describes the question being played
	GetCurrentTurn(ctx context.Context, input *GetCurrentTurnInput) (*GetCurrentTurnOutput, error)

	// ToggleWager places, switches or withdraws a bet on the current answerer
	ToggleWager(ctx context.Context, input *ToggleWagerInput) (*ToggleWagerOutput, error)

	// ResolveAnswer settles the current question and advances the game
	ResolveAnswer(ctx context.Context, input *ResolveAnswerInput) (*ResolveAnswerOutput, error)

	// RestartGame discards a game and returns its roster for a new registration
	RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error)

	// GetLedger returns the settled turns of a game
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// GetPlayerNames returns remembered players for registration suggestions
	GetPlayerNames(ctx context.Context, input *GetPlayerNamesInput) (*GetPlayerNamesOutput, error)

	// ForgetPlayer drops a remembered player
	ForgetPlayer(ctx context.Context, input *ForgetPlayerInput) (*ForgetPlayerOutput, error)
}
