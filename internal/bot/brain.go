package bot

import (
	"sort"

	"acquire/internal/domain"
)

// legalTiles returns the tiles of the player's hand that can be placed.
func legalTiles(game *domain.Game, player *domain.Player) []domain.Tile {
	var out []domain.Tile
	for _, t := range player.Hand {
		if !game.IsDeadTile(t) {
			out = append(out, t)
		}
	}
	return out
}

// affordable lists the active corporations the player can buy one share of
// now, cheapest first.
func affordable(game *domain.Game, player *domain.Player, budget int) []domain.Corporation {
	if game.Market.TurnPurchases >= game.Settings.MaxPurchasesPerTurn {
		return nil
	}
	var out []domain.Corporation
	for _, c := range game.Chains.ActiveCorporations() {
		if game.Market.Available[c] > 0 && sharePrice(game, c) <= budget {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sharePrice(game, out[i]) < sharePrice(game, out[j])
	})
	return out
}

func sharePrice(game *domain.Game, c domain.Corporation) int {
	return domain.Price(c, game.Chains.Size(c))
}

// highestTier returns the inactive corporation with the highest base price,
// alphabetically first among equals.
func highestTier(game *domain.Game) domain.Corporation {
	best := domain.NoCorporation
	for _, c := range game.Chains.Inactive() {
		if best == domain.NoCorporation || c.TierBase() > best.TierBase() {
			best = c
		}
	}
	return best
}

// EndConditionMet reports whether the table has reached a natural end: a
// chain of 41 or more tiles, every active chain safe, or no tile left that
// anyone could place.
func EndConditionMet(game *domain.Game) bool {
	if len(game.Pool) == 0 && !anyPlayable(game) {
		return true
	}
	active := game.Chains.ActiveCorporations()
	if len(active) == 0 {
		return false
	}
	allSafe := true
	for _, c := range active {
		if game.Chains.Size(c) >= 41 {
			return true
		}
		if !game.Chains.Safe(c, game.Settings.SafeChainSize) {
			allSafe = false
		}
	}
	return allSafe
}

func anyPlayable(game *domain.Game) bool {
	for _, pl := range game.Seated() {
		if len(legalTiles(game, pl)) > 0 {
			return true
		}
	}
	return false
}
