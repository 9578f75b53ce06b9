package app

import "acquire/internal/domain"

// EventKind identifies emitted domain events for dispatch by the collaborator.
type EventKind string

const (
	EventGameStarted      EventKind = "game_started"
	EventHandDealt        EventKind = "hand_dealt"
	EventTilePlaced       EventKind = "tile_placed"
	EventPlacementSkipped EventKind = "placement_skipped"
	EventChainFounded     EventKind = "chain_founded"
	EventChainGrew        EventKind = "chain_grew"
	EventMergerStarted    EventKind = "merger_started"
	EventSurvivorSelected EventKind = "survivor_selected"
	EventBonusPaid        EventKind = "bonus_paid"
	EventDispositionDue   EventKind = "disposition_due"
	EventSharesDisposed   EventKind = "shares_disposed"
	EventChainDissolved   EventKind = "chain_dissolved"
	EventMergerCompleted  EventKind = "merger_completed"
	EventStockBought      EventKind = "stock_bought"
	EventTilesDiscarded   EventKind = "tiles_discarded"
	EventTileDrawn        EventKind = "tile_drawn"
	EventTurnEnded        EventKind = "turn_ended"
	EventGameEnded        EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind `json:"kind"`
	Payload    any       `json:"payload"`
	Recipients []string  `json:"-"` // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID     string        `json:"game_id"`
	TurnOrder  []string      `json:"turn_order"`
	OrderTiles []domain.Tile `json:"order_tiles"`
}

type HandDealtPayload struct {
	UserID string        `json:"user_id"`
	Hand   []domain.Tile `json:"hand"`
}

type TilePlacedPayload struct {
	UserID string       `json:"user_id"`
	Tile   domain.Tile  `json:"tile"`
	Next   domain.Phase `json:"next"`
}

type PlacementSkippedPayload struct {
	UserID string `json:"user_id"`
}

type ChainFoundedPayload struct {
	UserID      string             `json:"user_id"`
	Corporation domain.Corporation `json:"corporation"`
	Tiles       []domain.Tile      `json:"tiles"`
	FreeShare   bool               `json:"free_share"`
}

type ChainGrewPayload struct {
	Corporation domain.Corporation `json:"corporation"`
	Tile        domain.Tile        `json:"tile"`
	Size        int                `json:"size"`
}

type MergerStartedPayload struct {
	UserID     string               `json:"user_id"`
	Trigger    domain.Tile          `json:"trigger"`
	Candidates []domain.Corporation `json:"candidates"`
	// Tied is non-empty when the merger maker must choose the survivor.
	Tied []domain.Corporation `json:"tied,omitempty"`
}

type SurvivorSelectedPayload struct {
	Survivor domain.Corporation   `json:"survivor"`
	Defunct  []domain.Corporation `json:"defunct"`
}

// BonusKind names the bonus a shareholder received.
type BonusKind string

const (
	BonusMajority BonusKind = "majority"
	BonusMinority BonusKind = "minority"
	BonusShared   BonusKind = "shared"
)

type BonusPaidPayload struct {
	Corporation domain.Corporation `json:"corporation"`
	UserID      string             `json:"user_id"`
	Kind        BonusKind          `json:"kind"`
	Amount      int                `json:"amount"`
}

type DispositionDuePayload struct {
	UserID      string             `json:"user_id"`
	Corporation domain.Corporation `json:"corporation"`
	Shares      int                `json:"shares"`
	Price       int                `json:"price"`
}

type SharesDisposedPayload struct {
	UserID      string             `json:"user_id"`
	Corporation domain.Corporation `json:"corporation"`
	Action      Disposition        `json:"action"`
	Sold        int                `json:"sold"`
	Traded      int                `json:"traded"`
	Received    int                `json:"received"`
	Kept        int                `json:"kept"`
}

type ChainDissolvedPayload struct {
	Corporation  domain.Corporation `json:"corporation"`
	Survivor     domain.Corporation `json:"survivor"`
	SurvivorSize int                `json:"survivor_size"`
}

type MergerCompletedPayload struct {
	Survivor domain.Corporation `json:"survivor"`
	Size     int                `json:"size"`
}

type StockBoughtPayload struct {
	UserID      string             `json:"user_id"`
	Corporation domain.Corporation `json:"corporation"`
	Price       int                `json:"price"`
}

type TilesDiscardedPayload struct {
	UserID string        `json:"user_id"`
	Tiles  []domain.Tile `json:"tiles"`
}

type TileDrawnPayload struct {
	UserID string        `json:"user_id"`
	Tiles  []domain.Tile `json:"tiles"`
}

type TurnEndedPayload struct {
	UserID         string `json:"user_id"`
	NextTurnUserID string `json:"next_turn_user_id"`
	PoolRemaining  int    `json:"pool_remaining"`
}

type GameEndedPayload struct {
	Standings []domain.Standing `json:"standings"`
}
