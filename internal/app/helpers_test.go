package app

import (
	"fmt"
	"math/rand"
	"testing"

	"acquire/internal/domain"

	"github.com/stretchr/testify/require"
)

func tile(s string) domain.Tile {
	t, err := domain.ParseTile(s)
	if err != nil {
		panic(err)
	}
	return t
}

func tiles(names ...string) []domain.Tile {
	out := make([]domain.Tile, 0, len(names))
	for _, n := range names {
		out = append(out, tile(n))
	}
	return out
}

// rowTiles returns the tiles of one row from column from to column to inclusive.
func rowTiles(row byte, from, to int) []string {
	var out []string
	for c := from; c <= to; c++ {
		out = append(out, fmt.Sprintf("%d%c", c, row))
	}
	return out
}

func newTestService() *Service {
	return NewService(rand.New(rand.NewSource(1)), domain.DefaultSettings())
}

// newTestGame seats the given players in order with starting cash and empty hands.
func newTestGame(ids ...string) *domain.Game {
	settings := domain.DefaultSettings()
	g := &domain.Game{
		ID:          "game-1",
		OwnerUserID: ids[0],
		Settings:    settings,
		Phase:       domain.PhasePlaceTile,
		Board:       domain.NewBoard(),
		Chains:      domain.NewChainRegistry(),
		Market:      domain.NewStockMarket(settings.SharesPerCorporation),
		Pool:        tiles("12I", "12H", "12G", "12F", "12E", "12D", "12C", "12B"),
	}
	for i, id := range ids {
		g.Players = append(g.Players, domain.NewPlayer(id, i, settings.StartingCash))
	}
	return g
}

func chain(g *domain.Game, c domain.Corporation, names ...string) {
	ts := tiles(names...)
	for _, t := range ts {
		g.Board.Place(t)
	}
	g.Chains.Found(&g.Board, c, ts)
}

func place(g *domain.Game, names ...string) {
	for _, t := range tiles(names...) {
		g.Board.Place(t)
	}
}

func give(g *domain.Game, userID string, c domain.Corporation, n int) {
	pl, _ := g.PlayerByID(userID)
	pl.Holdings[c] += n
	g.Market.Available[c] -= n
}

func player(t *testing.T, g *domain.Game, userID string) *domain.Player {
	t.Helper()
	pl, ok := g.PlayerByID(userID)
	require.True(t, ok, "player %s", userID)
	return pl
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// requireShareSupply checks that no corporation has more than the fixed supply in circulation.
func requireShareSupply(t *testing.T, g *domain.Game) {
	t.Helper()
	for _, c := range domain.Corporations {
		total := g.Market.Available[c]
		for _, pl := range g.Players {
			total += pl.Holdings[c]
		}
		require.LessOrEqual(t, total, g.Settings.SharesPerCorporation, "supply of %s", c)
	}
}
