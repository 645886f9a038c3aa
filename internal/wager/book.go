package wager

import (
	"github.com/KirkDiggler/wannabet/internal/models"
)

// ToggleInput contains parameters for toggling a wager
type ToggleInput struct {
	// Players is the current roster
	Players []*models.Player

	// Wagers is the current wager set
	Wagers []models.Wager

	// AnswererIndex is the roster index of the answerer
	AnswererIndex int

	// BettorIndex is the roster index of the player betting
	BettorIndex int

	// Stance is the side the bettor wants to take
	Stance models.Stance
}

// ToggleOutput contains the updated wager set
type ToggleOutput struct {
	// Wagers is the new wager set
	Wagers []models.Wager

	// Placed indicates the bettor now holds a wager with the requested stance
	Placed bool
}

// Toggle admits, replaces or withdraws a wager. Choosing the stance already
// held withdraws the wager; choosing the other stance replaces it. The answerer
// and players without coins cannot bet.
func Toggle(input *ToggleInput) (*ToggleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.AnswererIndex < 0 || input.AnswererIndex >= len(input.Players) {
		return nil, ErrInvalidAnswerer
	}
	if input.BettorIndex < 0 || input.BettorIndex >= len(input.Players) {
		return nil, ErrInvalidBettor
	}
	if !input.Stance.IsValid() {
		return nil, ErrInvalidStance
	}
	if input.BettorIndex == input.AnswererIndex {
		return nil, ErrSelfWager
	}

	wagers := make([]models.Wager, 0, len(input.Wagers)+1)
	var existing *models.Wager
	for _, w := range input.Wagers {
		if w.BettorIndex == input.BettorIndex {
			held := w
			existing = &held
			continue
		}
		wagers = append(wagers, w)
	}

	if existing != nil && existing.Stance == input.Stance {
		return &ToggleOutput{Wagers: wagers, Placed: false}, nil
	}

	if input.Players[input.BettorIndex].Coins <= 0 {
		return nil, ErrInsufficientCoins
	}

	wagers = append(wagers, models.Wager{
		BettorIndex: input.BettorIndex,
		Stance:      input.Stance,
	})

	return &ToggleOutput{Wagers: wagers, Placed: true}, nil
}

// EligibleBettors returns the indices of players allowed to bet on the answerer
func EligibleBettors(players []*models.Player, answererIndex int) []int {
	var out []int
	for i, p := range players {
		if i != answererIndex && p.Coins > 0 {
			out = append(out, i)
		}
	}
	return out
}

// StanceOf returns the stance a bettor holds, if any
func StanceOf(wagers []models.Wager, bettorIndex int) (models.Stance, bool) {
	for _, w := range wagers {
		if w.BettorIndex == bettorIndex {
			return w.Stance, true
		}
	}
	return "", false
}
