package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a player reached the win threshold
	GameStatusCompleted GameStatus = "completed"
)

// NoWinner marks a game without a winner yet
const NoWinner = -1

// Game is the full persisted state of a game session
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Classic disables age and time filtering of questions
	Classic bool

	// Players is the roster in registration order
	Players []*Player

	// CurrentRound is the 1-based round number
	CurrentRound int

	// CurrentQuestionInRound is the index into RoundAssignments being played
	CurrentQuestionInRound int

	// RoundAssignments holds the questions of the current round
	RoundAssignments []*RoundAssignment

	// UsedQuestions contains the text keys of questions already presented
	UsedQuestions []string

	// Wagers are the side bets on the current question
	Wagers []Wager

	// LastScoredPlayerIndices are the players whose balance went up on the last turn
	LastScoredPlayerIndices []int

	// WinnerIndex is the roster index of the winner, or NoWinner
	WinnerIndex int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// CurrentAssignment returns the assignment being played, or nil
func (g *Game) CurrentAssignment() *RoundAssignment {
	if g.CurrentQuestionInRound < 0 || g.CurrentQuestionInRound >= len(g.RoundAssignments) {
		return nil
	}
	return g.RoundAssignments[g.CurrentQuestionInRound]
}

// IsCompleted reports whether the game has a winner
func (g *Game) IsCompleted() bool {
	return g.Status == GameStatusCompleted
}
