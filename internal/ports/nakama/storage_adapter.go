package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"acquire/internal/domain"
	"acquire/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageModule is the part of runtime.NakamaModule the snapshot store needs.
type storageModule interface {
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
}

// NakamaSnapshotStore implements ports.SnapshotStore with system-owned storage objects.
type NakamaSnapshotStore struct {
	nk         storageModule
	collection string
}

// NewNakamaSnapshotStore creates a snapshot store writing to the given collection.
func NewNakamaSnapshotStore(nk storageModule, collection string) *NakamaSnapshotStore {
	return &NakamaSnapshotStore{nk: nk, collection: collection}
}

// Save replaces the stored snapshot of the game.
func (s *NakamaSnapshotStore) Save(ctx context.Context, game *domain.Game) error {
	value, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game %s: %w", game.ID, err)
	}

	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      s.collection,
			Key:             game.ID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", game.ID, err)
	}
	return nil
}

// Load reads the latest snapshot of a game.
func (s *NakamaSnapshotStore) Load(ctx context.Context, gameID string) (*domain.Game, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: s.collection, Key: gameID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", gameID, err)
	}
	if len(objects) == 0 {
		return nil, ports.ErrSnapshotNotFound
	}

	var game domain.Game
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", gameID, err)
	}
	return &game, nil
}

var _ ports.SnapshotStore = (*NakamaSnapshotStore)(nil)
