package ledger

import "github.com/KirkDiggler/wannabet/internal/models"

// AppendEntryInput contains parameters for appending a ledger entry
type AppendEntryInput struct {
	Entry *models.LedgerEntry
}

// ListEntriesInput contains parameters for listing a game's ledger
type ListEntriesInput struct {
	GameID string
}

// ListEntriesOutput contains the ledger entries of a game
type ListEntriesOutput struct {
	Entries []*models.LedgerEntry
}

// DeleteEntriesInput contains parameters for deleting a game's ledger
type DeleteEntriesInput struct {
	GameID string
}
