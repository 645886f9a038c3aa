package models

import (
	"time"
)

// CoinChange records a single player's balance movement in a settled turn
type CoinChange struct {
	// PlayerIndex is the roster index of the player
	PlayerIndex int

	// Before is the balance before settlement
	Before int

	// After is the balance after settlement
	After int
}

// LedgerEntry records one settled turn
type LedgerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// GameID is the game the turn belongs to
	GameID string

	// Round is the round number the turn was played in
	Round int

	// QuestionText is the key of the question that was answered
	QuestionText string

	// AnswererIndex is the roster index of the answerer
	AnswererIndex int

	// Correct indicates if the answer was judged correct
	Correct bool

	// Wagers are the side bets that were settled
	Wagers []Wager

	// Changes lists every balance that moved
	Changes []CoinChange

	// ScoredPlayerIndices are the players whose balance went up
	ScoredPlayerIndices []int

	// Timestamp is when the turn was settled
	Timestamp time.Time
}
