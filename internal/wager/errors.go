package wager

// WagerError is a custom error type for wager errors
type WagerError string

// Error implements the error interface
func (e WagerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput          WagerError = "input cannot be nil"
	ErrInvalidAnswerer   WagerError = "answerer index out of range"
	ErrInvalidBettor     WagerError = "bettor index out of range"
	ErrInvalidStance     WagerError = "unknown wager stance"
	ErrSelfWager         WagerError = "the answerer cannot bet on their own question"
	ErrInsufficientCoins WagerError = "a player needs at least one coin to bet"
	ErrNegativeReward    WagerError = "base reward cannot be negative"
)
