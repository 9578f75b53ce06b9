package app

import (
	"math/rand"
	"sort"
	"time"

	"acquire/internal/domain"

	"github.com/google/uuid"
)

// Service is the turn engine. Every action takes a game snapshot and returns a
// new one; the input is never modified and a rejected action returns no state.
type Service struct {
	rng      *rand.Rand
	settings domain.Settings
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, settings domain.Settings) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, settings: settings}
}

// StartGame shuffles the tile pool, fixes the turn order by one drawn tile per
// player (lowest rank first), places those tiles and deals the opening hands.
func (s *Service) StartGame(playerIDs []string, spectatorIDs []string) (*domain.Game, []Event, error) {
	if len(playerIDs) < s.settings.MinPlayers {
		return nil, nil, domain.ErrTooFewPlayers
	}
	if len(playerIDs) > s.settings.MaxPlayers {
		return nil, nil, domain.ErrTooManyPlayers
	}
	seen := make(map[string]bool, len(playerIDs)+len(spectatorIDs))
	for _, id := range append(append([]string{}, playerIDs...), spectatorIDs...) {
		if seen[id] {
			return nil, nil, domain.ErrDuplicatePlayer
		}
		seen[id] = true
	}

	game := &domain.Game{
		ID:          uuid.NewString(),
		OwnerUserID: playerIDs[0],
		Settings:    s.settings,
		Phase:       domain.PhasePlaceTile,
		Board:       domain.NewBoard(),
		Chains:      domain.NewChainRegistry(),
		Market:      domain.NewStockMarket(s.settings.SharesPerCorporation),
		Pool:        domain.ShuffleTiles(s.rng, domain.NewTilePool()),
	}

	type draw struct {
		userID string
		tile   domain.Tile
	}
	draws := make([]draw, len(playerIDs))
	for i, id := range playerIDs {
		draws[i] = draw{userID: id, tile: game.Pool[i]}
	}
	game.Pool = game.Pool[len(playerIDs):]
	sort.Slice(draws, func(i, j int) bool { return draws[i].tile.Rank() < draws[j].tile.Rank() })

	started := GameStartedPayload{GameID: game.ID}
	for order, d := range draws {
		game.Players = append(game.Players, domain.NewPlayer(d.userID, order, s.settings.StartingCash))
		game.Board.Place(d.tile)
		started.TurnOrder = append(started.TurnOrder, d.userID)
		started.OrderTiles = append(started.OrderTiles, d.tile)
	}
	for _, id := range spectatorIDs {
		spectator := domain.NewPlayer(id, -1, 0)
		spectator.Spectator = true
		game.Players = append(game.Players, spectator)
	}

	events := []Event{{Kind: EventGameStarted, Payload: started}}
	for _, pl := range game.Seated() {
		game.Draw(pl, s.settings.HandSize)
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: pl.UserID, Hand: append([]domain.Tile(nil), pl.Hand...)},
			Recipients: []string{pl.UserID},
		})
	}

	return game, events, nil
}

// begin validates that phase is current and that actorID is the current player,
// and returns a working copy of the game.
func (s *Service) begin(game *domain.Game, actorID string, phase domain.Phase) (*domain.Game, *domain.Player, error) {
	if game.Phase == domain.PhaseFinished {
		return nil, nil, domain.ErrGameFinished
	}
	if game.Phase != phase {
		return nil, nil, domain.ErrInvalidPhase
	}
	if _, ok := game.PlayerByID(actorID); !ok {
		return nil, nil, domain.ErrUnknownPlayer
	}
	if game.CurrentPlayer().UserID != actorID {
		return nil, nil, domain.ErrNotYourTurn
	}
	g := game.Clone()
	return g, g.CurrentPlayer(), nil
}

// PlaceTile places a tile from the current player's hand and classifies the
// placement as plain, founding, growth or merger.
func (s *Service) PlaceTile(game *domain.Game, actorID string, tile domain.Tile) (*domain.Game, []Event, error) {
	g, pl, err := s.begin(game, actorID, domain.PhasePlaceTile)
	if err != nil {
		return nil, nil, err
	}
	if !domain.ContainsTile(pl.Hand, tile) {
		return nil, nil, domain.ErrTileNotInHand
	}

	corps := g.Board.AdjacentCorporations(tile)
	if len(corps) >= 2 {
		if err := g.Chains.CheckMergeable(corps, g.Settings.SafeChainSize); err != nil {
			return nil, nil, err
		}
	}
	placedNeighbors := len(g.Board.PlacedNeighbors(tile))

	pl.Hand, _ = domain.RemoveTile(pl.Hand, tile)
	g.Board.Place(tile)

	var events []Event
	switch {
	case len(corps) == 0 && placedNeighbors > 0 && len(g.Chains.Inactive()) > 0:
		t := tile
		g.FoundingTile = &t
		g.Phase = domain.PhaseFoundChain
	case len(corps) == 0:
		g.Phase = domain.PhaseBuyStocks
	case len(corps) == 1:
		g.Chains.Grow(&g.Board, corps[0], tile)
		g.Phase = domain.PhaseBuyStocks
	default:
		g.Phase = domain.PhaseMergerResolution
	}

	events = append(events, Event{Kind: EventTilePlaced, Payload: TilePlacedPayload{
		UserID: actorID,
		Tile:   tile,
		Next:   g.Phase,
	}})
	switch {
	case len(corps) == 1:
		events = append(events, Event{Kind: EventChainGrew, Payload: ChainGrewPayload{
			Corporation: corps[0],
			Tile:        tile,
			Size:        g.Chains.Size(corps[0]),
		}})
	case len(corps) >= 2:
		events = append(events, s.startMerger(g, corps, tile)...)
	}
	return g, events, nil
}

// Pass skips the placement of a player who holds no playable tile, either
// because the hand is empty or because every tile in it is dead. The turn
// continues with the buy phase; EndTurn then discards the dead tiles.
func (s *Service) Pass(game *domain.Game, actorID string) (*domain.Game, []Event, error) {
	g, pl, err := s.begin(game, actorID, domain.PhasePlaceTile)
	if err != nil {
		return nil, nil, err
	}
	if len(s.LegalTiles(g, pl.UserID)) > 0 {
		return nil, nil, domain.ErrPlayableTileInHand
	}

	g.Phase = domain.PhaseBuyStocks
	return g, []Event{{Kind: EventPlacementSkipped, Payload: PlacementSkippedPayload{UserID: actorID}}}, nil
}

// FoundChain names the chain formed by the tile just placed. The chain takes
// the connected group of unowned tiles containing that tile.
func (s *Service) FoundChain(game *domain.Game, actorID string, corp domain.Corporation) (*domain.Game, []Event, error) {
	g, pl, err := s.begin(game, actorID, domain.PhaseFoundChain)
	if err != nil {
		return nil, nil, err
	}
	if !corp.Valid() || g.Chains.Active(corp) {
		return nil, nil, domain.ErrUnknownOrActiveCorporation
	}

	tiles := g.Board.ConnectedUnowned(*g.FoundingTile)
	g.Chains.Found(&g.Board, corp, tiles)
	free := g.Market.Grant(pl, corp)
	g.FoundingTile = nil
	g.Phase = domain.PhaseBuyStocks

	return g, []Event{{Kind: EventChainFounded, Payload: ChainFoundedPayload{
		UserID:      actorID,
		Corporation: corp,
		Tiles:       tiles,
		FreeShare:   free,
	}}}, nil
}

// BuyStock buys one share of an active corporation at its current price.
func (s *Service) BuyStock(game *domain.Game, actorID string, corp domain.Corporation) (*domain.Game, []Event, error) {
	g, pl, err := s.begin(game, actorID, domain.PhaseBuyStocks)
	if err != nil {
		return nil, nil, err
	}
	if !corp.Valid() || !g.Chains.Active(corp) {
		return nil, nil, domain.ErrUnknownOrActiveCorporation
	}

	price := domain.Price(corp, g.Chains.Size(corp))
	if err := g.Market.Buy(pl, corp, 1, price, g.Settings.MaxPurchasesPerTurn); err != nil {
		return nil, nil, err
	}

	return g, []Event{{Kind: EventStockBought, Payload: StockBoughtPayload{
		UserID:      actorID,
		Corporation: corp,
		Price:       price,
	}}}, nil
}

// EndTurn discards the player's dead tiles, refills the hand from the pool and
// passes the turn to the next seated player.
func (s *Service) EndTurn(game *domain.Game, actorID string) (*domain.Game, []Event, error) {
	g, pl, err := s.begin(game, actorID, domain.PhaseBuyStocks)
	if err != nil {
		return nil, nil, err
	}

	var events []Event
	var dead []domain.Tile
	if len(g.Pool) > 0 {
		for _, t := range pl.Hand {
			if g.IsDeadTile(t) {
				dead = append(dead, t)
			}
		}
		for _, t := range dead {
			pl.Hand, _ = domain.RemoveTile(pl.Hand, t)
		}
	}
	if len(dead) > 0 {
		events = append(events, Event{Kind: EventTilesDiscarded, Payload: TilesDiscardedPayload{
			UserID: actorID,
			Tiles:  dead,
		}})
	}

	if drawn := g.Draw(pl, g.Settings.HandSize-len(pl.Hand)); len(drawn) > 0 {
		events = append(events, Event{
			Kind:       EventTileDrawn,
			Payload:    TileDrawnPayload{UserID: actorID, Tiles: drawn},
			Recipients: []string{actorID},
		})
	}

	g.Market.ResetTurn()
	g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Seated())
	g.Phase = domain.PhasePlaceTile

	events = append(events, Event{Kind: EventTurnEnded, Payload: TurnEndedPayload{
		UserID:         actorID,
		NextTurnUserID: g.CurrentPlayer().UserID,
		PoolRemaining:  len(g.Pool),
	}})
	return g, events, nil
}

// EndGame scores the game and freezes it. It is accepted from the buy phase,
// from either the current player or the game owner.
func (s *Service) EndGame(game *domain.Game, actorID string) (*domain.Game, []Event, error) {
	if game.Phase == domain.PhaseFinished {
		return nil, nil, domain.ErrGameFinished
	}
	if game.Phase != domain.PhaseBuyStocks {
		return nil, nil, domain.ErrInvalidPhase
	}
	if pl, ok := game.PlayerByID(actorID); !ok {
		return nil, nil, domain.ErrUnknownPlayer
	} else if pl.Spectator {
		return nil, nil, domain.ErrNotYourTurn
	}
	if actorID != game.CurrentPlayer().UserID && actorID != game.OwnerUserID {
		return nil, nil, domain.ErrNotYourTurn
	}

	g := game.Clone()
	g.Standings = FinalStandings(g)
	g.Phase = domain.PhaseFinished

	return g, []Event{{Kind: EventGameEnded, Payload: GameEndedPayload{
		Standings: append([]domain.Standing(nil), g.Standings...),
	}}}, nil
}

// LegalTiles returns the tiles in the player's hand that may be placed now.
func (s *Service) LegalTiles(game *domain.Game, userID string) []domain.Tile {
	pl, ok := game.PlayerByID(userID)
	if !ok {
		return nil
	}
	var out []domain.Tile
	for _, t := range pl.Hand {
		if !game.IsDeadTile(t) {
			out = append(out, t)
		}
	}
	return out
}
