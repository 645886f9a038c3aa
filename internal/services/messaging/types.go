package messaging

import "github.com/KirkDiggler/wannabet/internal/random"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks among message variants
	Random random.Source
}

// GetGameStartedMessageInput contains the input for GetGameStartedMessage
type GetGameStartedMessageInput struct {
	PlayerNames []string
	Classic     bool
}

// GetGameStartedMessageOutput contains the output for GetGameStartedMessage
type GetGameStartedMessageOutput struct {
	Message string
}

// GetVerdictMessageInput contains parameters for commentary on a settled question
type GetVerdictMessageInput struct {
	// AnswererName is the name of the player who answered
	AnswererName string

	// IsCorrect is the verdict on the answer
	IsCorrect bool

	// WinningBettors are the names of bettors who called it right
	WinningBettors []string

	// LosingBettors are the names of bettors who called it wrong
	LosingBettors []string
}

// GetVerdictMessageOutput contains the verdict commentary
type GetVerdictMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetVictoryMessageInput contains parameters for the victory message
type GetVictoryMessageInput struct {
	WinnerName string
	Coins      int
	Rounds     int
}

// GetVictoryMessageOutput contains the victory message
type GetVictoryMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
