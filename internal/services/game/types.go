package game

import (
	"log/slog"

	"github.com/KirkDiggler/wannabet/internal/common/clock"
	"github.com/KirkDiggler/wannabet/internal/common/uuid"
	"github.com/KirkDiggler/wannabet/internal/models"
	"github.com/KirkDiggler/wannabet/internal/questions"
	gameRepo "github.com/KirkDiggler/wannabet/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/wannabet/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/wannabet/internal/repositories/player"
	"github.com/KirkDiggler/wannabet/internal/rounds"
	"github.com/KirkDiggler/wannabet/internal/wager"
)

const (
	// MinPlayers is the smallest roster that can play
	MinPlayers = 2

	// MaxPlayers is the largest roster that can share a device
	MaxPlayers = 4

	// MaxNameLength is the longest player name accepted, in characters
	MaxNameLength = 20

	// MaxAge is the oldest age accepted at registration
	MaxAge = 120

	// DefaultWinThreshold is the coin balance that wins the game
	DefaultWinThreshold = 10
)

// Config holds configuration for the game service
type Config struct {
	// WinThreshold is the balance that ends the game; DefaultWinThreshold when zero
	WinThreshold int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	LedgerRepo ledgerRepo.Repository

	// Round and settlement dependencies
	RoundGenerator rounds.RoundGenerator
	QuestionPool   *questions.Pool
	Settlement     *wager.Engine

	// Utility dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; slog.Default() is used when nil
	Logger *slog.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Players are the registered players; only Name and Age are read
	Players []*models.Player

	// Classic plays without age and time filtering
	Classic bool
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for getting a game
type GetGameInput struct {
	// GameID is optional; the current game is returned when empty
	GameID string
}

// GetGameOutput contains the requested game
type GetGameOutput struct {
	Game *models.Game
}

// GetCurrentTurnInput contains parameters for describing the current turn
type GetCurrentTurnInput struct {
	// GameID is optional; the current game is used when empty
	GameID string
}

// GetCurrentTurnOutput describes the question being played
type GetCurrentTurnOutput struct {
	// Game is the game the turn belongs to
	Game *models.Game

	// Assignment is the question with its answerer and asker
	Assignment *models.RoundAssignment

	// Answerer is the player answering the question
	Answerer *models.Player

	// Asker is the player reading the question
	Asker *models.Player

	// Round is the 1-based round number
	Round int

	// QuestionNumber is the 1-based position within the round
	QuestionNumber int

	// QuestionsInRound is the number of questions in the round
	QuestionsInRound int

	// EligibleBettors are the roster indices allowed to bet
	EligibleBettors []int

	// BaseReward is paid to the answerer for a right answer
	BaseReward int
}

// ToggleWagerInput contains parameters for toggling a wager
type ToggleWagerInput struct {
	// GameID is optional; the current game is used when empty
	GameID string

	// BettorIndex is the roster index of the player betting
	BettorIndex int

	// Stance is the side the player picked
	Stance models.Stance
}

// ToggleWagerOutput contains the result of toggling a wager
type ToggleWagerOutput struct {
	// Wagers is the wager set after the toggle
	Wagers []models.Wager

	// Placed indicates the bettor now holds the requested stance
	Placed bool
}

// ResolveAnswerInput contains parameters for resolving the current question
type ResolveAnswerInput struct {
	// GameID is optional; the current game is used when empty
	GameID string

	// IsCorrect is the asker's verdict on the answer
	IsCorrect bool
}

// ResolveAnswerOutput contains the result of resolving a question
type ResolveAnswerOutput struct {
	// Game is the game after settlement and advancement
	Game *models.Game

	// Entry is the ledger entry recorded for the turn
	Entry *models.LedgerEntry

	// ScoredPlayerIndices are the players whose balance increased
	ScoredPlayerIndices []int

	// WinnerIndex is the winner's roster index, or models.NoWinner
	WinnerIndex int

	// NewRound indicates a new round was dealt
	NewRound bool

	// UsedReset indicates the used questions were recycled for the new round
	UsedReset bool
}

// RestartGameInput contains parameters for restarting a game
type RestartGameInput struct {
	// GameID is optional; the current game is used when empty
	GameID string
}

// RestartGameOutput contains the roster of the discarded game
type RestartGameOutput struct {
	// Players carry the previous names and ages with balances reset
	Players []*models.Player
}

// GetLedgerInput contains parameters for getting a ledger
type GetLedgerInput struct {
	// GameID is optional; the current game is used when empty
	GameID string
}

// GetLedgerOutput contains the settled turns of a game
type GetLedgerOutput struct {
	Entries []*models.LedgerEntry
}

// GetPlayerNamesInput contains parameters for getting remembered players
type GetPlayerNamesInput struct{}

// GetPlayerNamesOutput contains remembered players in display order
type GetPlayerNamesOutput struct {
	Players []*models.Player
}

// ForgetPlayerInput contains parameters for forgetting a remembered player
type ForgetPlayerInput struct {
	// Name is matched ignoring case
	Name string
}

// ForgetPlayerOutput contains the players still remembered
type ForgetPlayerOutput struct {
	Players []*models.Player
}
