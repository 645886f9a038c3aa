package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wannabet/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGameStartedMessage returns a message for when a game starts
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetVerdictMessage returns commentary on a settled question
	GetVerdictMessage(ctx context.Context, input *GetVerdictMessageInput) (*GetVerdictMessageOutput, error)

	// GetVictoryMessage returns a message for the winner
	GetVictoryMessage(ctx context.Context, input *GetVictoryMessageInput) (*GetVictoryMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
