package bot

import (
	"acquire/internal/app"
	"acquire/internal/domain"
)

// GoodBot plays the first legal tile, founds the most valuable corporation,
// sells on every merger and buys the cheapest shares it can afford.
type GoodBot struct{}

func (b *GoodBot) Decide(game *domain.Game, player *domain.Player) (app.Command, error) {
	switch game.Phase {
	case domain.PhasePlaceTile:
		legal := legalTiles(game, player)
		if len(legal) == 0 {
			return app.Command{Kind: app.CommandPass}, nil
		}
		return app.Command{Kind: app.CommandPlaceTile, Tile: legal[0]}, nil

	case domain.PhaseFoundChain:
		return app.Command{Kind: app.CommandFoundChain, Corporation: highestTier(game)}, nil

	case domain.PhaseMergerResolution:
		if game.Merger.SurvivorPending {
			return app.Command{Kind: app.CommandSelectSurvivor, Corporation: game.Merger.Tied(game.Chains)[0]}, nil
		}
		return app.Command{Kind: app.CommandDispose, Action: app.DispositionSell}, nil

	case domain.PhaseBuyStocks:
		if EndConditionMet(game) {
			return app.Command{Kind: app.CommandEndGame}, nil
		}
		if options := affordable(game, player, player.Cash); len(options) > 0 {
			return app.Command{Kind: app.CommandBuyStock, Corporation: options[0]}, nil
		}
		return app.Command{Kind: app.CommandEndTurn}, nil
	}
	return app.Command{}, ErrNoMove
}
