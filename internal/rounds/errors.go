package rounds

import (
	"fmt"

	"github.com/KirkDiggler/wannabet/internal/models"
)

// RoundError is a custom error type for round generation errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          RoundError = "config cannot be nil"
	ErrNilRandom          RoundError = "random source cannot be nil"
	ErrNilClock           RoundError = "clock cannot be nil"
	ErrNilInput           RoundError = "input cannot be nil"
	ErrNilPool            RoundError = "question pool cannot be nil"
	ErrNilUsedSet         RoundError = "used question set cannot be nil"
	ErrNotEnoughPlayers   RoundError = "at least two players are required"
	ErrQuestionsExhausted RoundError = "no suitable questions left"
)

// ExhaustionError reports that no eligible question exists for a player even
// after the used set was reset. It means the question content needs more
// questions for the player's level.
type ExhaustionError struct {
	PlayerName string
	Age        int
	Level      models.AgeLevel
}

// Error implements the error interface
func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("no suitable questions available for player %s (age %d, level: %s): add more questions for this age category",
		e.PlayerName, e.Age, e.Level)
}

// Is lets errors.Is match ErrQuestionsExhausted
func (e *ExhaustionError) Is(target error) bool {
	return target == ErrQuestionsExhausted
}
