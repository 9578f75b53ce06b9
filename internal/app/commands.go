package app

import (
	"fmt"

	"acquire/internal/domain"
)

// Disposition is a shareholder's choice for shares of a defunct corporation.
type Disposition string

const (
	DispositionSell  Disposition = "sell"
	DispositionTrade Disposition = "trade"
	DispositionKeep  Disposition = "keep"
)

// Valid reports whether d is one of sell, trade or keep.
func (d Disposition) Valid() bool {
	switch d {
	case DispositionSell, DispositionTrade, DispositionKeep:
		return true
	}
	return false
}

// CommandKind names one request of the action surface.
type CommandKind string

const (
	CommandPlaceTile      CommandKind = "place_tile"
	CommandPass           CommandKind = "pass"
	CommandFoundChain     CommandKind = "found_chain"
	CommandSelectSurvivor CommandKind = "select_survivor"
	CommandDispose        CommandKind = "dispose"
	CommandBuyStock       CommandKind = "buy_stock"
	CommandEndTurn        CommandKind = "end_turn"
	CommandEndGame        CommandKind = "end_game"
)

// Command is a single player action. Only the fields used by Kind are read.
type Command struct {
	Kind        CommandKind        `json:"kind"`
	Tile        domain.Tile        `json:"tile,omitempty"`
	Corporation domain.Corporation `json:"corporation,omitempty"`
	Action      Disposition        `json:"action,omitempty"`
}

// Apply dispatches cmd to the matching action.
func (s *Service) Apply(game *domain.Game, actorID string, cmd Command) (*domain.Game, []Event, error) {
	switch cmd.Kind {
	case CommandPlaceTile:
		return s.PlaceTile(game, actorID, cmd.Tile)
	case CommandPass:
		return s.Pass(game, actorID)
	case CommandFoundChain:
		return s.FoundChain(game, actorID, cmd.Corporation)
	case CommandSelectSurvivor:
		return s.SelectSurvivor(game, actorID, cmd.Corporation)
	case CommandDispose:
		return s.Dispose(game, actorID, cmd.Action)
	case CommandBuyStock:
		return s.BuyStock(game, actorID, cmd.Corporation)
	case CommandEndTurn:
		return s.EndTurn(game, actorID)
	case CommandEndGame:
		return s.EndGame(game, actorID)
	default:
		return nil, nil, fmt.Errorf("unknown command %q", cmd.Kind)
	}
}
