package ports

import "context"

// WalletUpdate represents a single currency change for a user.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort defines the interface for paying out game prizes.
type EconomyPort interface {
	// AwardOnce applies the wallet updates for the given game at most once.
	// Returns granted=false when the game was already settled.
	AwardOnce(ctx context.Context, gameID string, updates []WalletUpdate) (bool, error)
}
