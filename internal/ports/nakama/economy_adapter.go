package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"acquire/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	settlementCollection = "acquire_settlements"
	walletCurrency       = "gold"
)

// multiUpdater is the part of runtime.NakamaModule the economy adapter needs.
type multiUpdater interface {
	MultiUpdate(ctx context.Context, accountUpdates []*runtime.AccountUpdate, storageWrites []*runtime.StorageWrite, storageDeletes []*runtime.StorageDelete, walletUpdates []*runtime.WalletUpdate, updateLedger bool) ([]*api.StorageObjectAck, []*runtime.WalletUpdateResult, error)
}

// NakamaEconomyAdapter implements ports.EconomyPort using Nakama's wallet system.
// A system-owned storage marker keyed by game id makes each award idempotent.
type NakamaEconomyAdapter struct {
	nk multiUpdater
}

// NewNakamaEconomyAdapter creates a new economy adapter.
func NewNakamaEconomyAdapter(nk multiUpdater) *NakamaEconomyAdapter {
	return &NakamaEconomyAdapter{nk: nk}
}

// AwardOnce writes the settlement marker and the wallet changes atomically.
func (a *NakamaEconomyAdapter) AwardOnce(ctx context.Context, gameID string, updates []ports.WalletUpdate) (bool, error) {
	if gameID == "" {
		return false, fmt.Errorf("gameID is required")
	}

	walletUpdates := make([]*runtime.WalletUpdate, 0, len(updates))
	winners := make([]string, 0, len(updates))
	for _, update := range updates {
		if update.Amount == 0 {
			continue
		}
		walletUpdates = append(walletUpdates, &runtime.WalletUpdate{
			UserID:    update.UserID,
			Changeset: map[string]int64{walletCurrency: update.Amount},
			Metadata:  update.Metadata,
		})
		winners = append(winners, update.UserID)
	}
	if len(walletUpdates) == 0 {
		return false, nil
	}

	marker := map[string]interface{}{
		"winners":    winners,
		"settled_at": time.Now().UTC().Format(time.RFC3339),
	}
	value, err := json.Marshal(marker)
	if err != nil {
		return false, fmt.Errorf("failed to marshal settlement marker: %w", err)
	}

	storageWrites := []*runtime.StorageWrite{
		{
			Collection:      settlementCollection,
			Key:             gameID,
			Value:           string(value),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}

	_, _, err = a.nk.MultiUpdate(ctx, nil, storageWrites, nil, walletUpdates, true)
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to award prize: %w", err)
	}
	return true, nil
}

var _ ports.EconomyPort = (*NakamaEconomyAdapter)(nil)
