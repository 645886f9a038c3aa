package models

// Stance is the side a bettor takes on the answerer
type Stance string

const (
	// StanceBacking bets the answerer gets it right
	StanceBacking Stance = "backing"

	// StanceOpposing bets the answerer gets it wrong
	StanceOpposing Stance = "opposing"
)

// IsValid reports whether the stance is known
func (s Stance) IsValid() bool {
	return s == StanceBacking || s == StanceOpposing
}

// Wager is a side bet placed on the active question
type Wager struct {
	// BettorIndex is the roster index of the betting player
	BettorIndex int

	// Stance is the side taken
	Stance Stance
}
