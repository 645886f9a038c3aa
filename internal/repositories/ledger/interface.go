package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wannabet/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for settlement ledger persistence
type Repository interface {
	// AppendEntry adds a settled turn to the end of a game's ledger
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// ListEntries retrieves a game's ledger in settlement order
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// DeleteEntries removes a game's ledger
	DeleteEntries(ctx context.Context, input *DeleteEntriesInput) error
}
