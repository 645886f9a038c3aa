package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        GameError = "game not found"
	ErrGameCompleted       GameError = "game is already completed"
	ErrInvalidGameState    GameError = "invalid game state"
	ErrNilInput            GameError = "input cannot be nil"
	ErrTooFewPlayers       GameError = "at least 2 players are required"
	ErrTooManyPlayers      GameError = "at most 4 players can play"
	ErrEmptyPlayerName     GameError = "player name cannot be empty"
	ErrPlayerNameTooLong   GameError = "player name is too long"
	ErrDuplicatePlayerName GameError = "player names must be unique"
	ErrInvalidAge          GameError = "player age must be between 0 and 120"
	ErrInvalidWinThreshold GameError = "win threshold must be positive"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilGameRepo         GameError = "game repository cannot be nil"
	ErrNilPlayerRepo       GameError = "player repository cannot be nil"
	ErrNilLedgerRepo       GameError = "ledger repository cannot be nil"
	ErrNilRoundGenerator   GameError = "round generator cannot be nil"
	ErrNilQuestionPool     GameError = "question pool cannot be nil"
	ErrNilSettlementEngine GameError = "settlement engine cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
