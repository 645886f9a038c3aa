package wager

import (
	"github.com/KirkDiggler/wannabet/internal/models"
)

// DefaultBaseReward is the number of coins a correct answer earns before wagers
const DefaultBaseReward = 2

// Config holds configuration for the settlement engine
type Config struct {
	// BaseReward is paid to a correct answerer on top of forfeited opposing stakes
	BaseReward int
}

// SettleInput contains parameters for settling a turn
type SettleInput struct {
	// Players is the roster before settlement; it is not modified
	Players []*models.Player

	// Wagers are the side bets on the question
	Wagers []models.Wager

	// AnswererIndex is the roster index of the answerer
	AnswererIndex int

	// IsCorrect is the verdict on the answer
	IsCorrect bool
}

// SettleOutput contains the result of settling a turn
type SettleOutput struct {
	// UpdatedPlayers is a new roster with the settled balances
	UpdatedPlayers []*models.Player

	// ScoredPlayerIndices are the players whose balance increased
	ScoredPlayerIndices []int
}

// Engine settles wagers at the end of a turn
type Engine struct {
	baseReward int
}

// NewEngine creates a settlement engine. A nil config uses DefaultBaseReward.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return &Engine{baseReward: DefaultBaseReward}, nil
	}
	if cfg.BaseReward < 0 {
		return nil, ErrNegativeReward
	}
	return &Engine{baseReward: cfg.BaseReward}, nil
}

// BaseReward returns the configured reward for a correct answer
func (e *Engine) BaseReward() int {
	return e.baseReward
}

// Settle computes new balances. It trusts the wager set: admission rules are
// enforced by Toggle before wagers get here. Only index ranges are checked.
func (e *Engine) Settle(input *SettleInput) (*SettleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.AnswererIndex < 0 || input.AnswererIndex >= len(input.Players) {
		return nil, ErrInvalidAnswerer
	}

	var backing, opposing []int
	for _, w := range input.Wagers {
		if w.BettorIndex < 0 || w.BettorIndex >= len(input.Players) {
			return nil, ErrInvalidBettor
		}
		switch w.Stance {
		case models.StanceBacking:
			backing = append(backing, w.BettorIndex)
		case models.StanceOpposing:
			opposing = append(opposing, w.BettorIndex)
		default:
			return nil, ErrInvalidStance
		}
	}

	players := models.ClonePlayers(input.Players)

	if input.IsCorrect {
		players[input.AnswererIndex].Coins += e.baseReward + len(opposing)
		for _, i := range opposing {
			players[i].Coins = max(0, players[i].Coins-1)
		}
		for _, i := range backing {
			players[i].Coins++
		}

		scored := make([]int, 0, 1+len(backing))
		scored = append(scored, input.AnswererIndex)
		scored = append(scored, backing...)

		return &SettleOutput{
			UpdatedPlayers:      players,
			ScoredPlayerIndices: scored,
		}, nil
	}

	for _, i := range opposing {
		players[i].Coins++
	}
	for _, i := range backing {
		players[i].Coins = max(0, players[i].Coins-1)
	}

	scored := make([]int, 0, len(opposing))
	scored = append(scored, opposing...)

	return &SettleOutput{
		UpdatedPlayers:      players,
		ScoredPlayerIndices: scored,
	}, nil
}

// Winner returns the index of the first player at or above threshold, or models.NoWinner
func Winner(players []*models.Player, threshold int) int {
	for i, p := range players {
		if p.Coins >= threshold {
			return i
		}
	}
	return models.NoWinner
}
