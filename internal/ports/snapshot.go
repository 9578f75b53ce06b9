package ports

import (
	"context"
	"errors"

	"acquire/internal/domain"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists for the id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists complete game states between accepted actions.
type SnapshotStore interface {
	// Save stores the game under its id, replacing any previous snapshot.
	Save(ctx context.Context, game *domain.Game) error
	// Load returns the latest snapshot of a game.
	Load(ctx context.Context, gameID string) (*domain.Game, error)
}
