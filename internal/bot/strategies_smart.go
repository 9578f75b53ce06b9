package bot

import (
	"acquire/internal/app"
	"acquire/internal/domain"
)

// SmartBot scores placements through the rule pipeline, keeps chains it is
// invested in, and concentrates purchases where it already holds shares.
type SmartBot struct {
	Tuning Tuning
	Rules  []SelectionRule
}

func (b *SmartBot) Decide(game *domain.Game, player *domain.Player) (app.Command, error) {
	switch game.Phase {
	case domain.PhasePlaceTile:
		ctx := &SelectionContext{Game: game, Player: player, Tuning: b.Tuning}
		for _, t := range legalTiles(game, player) {
			ctx.Candidates = append(ctx.Candidates, TileCandidate{Tile: t})
		}
		rules := b.Rules
		if rules == nil {
			rules = DefaultRules()
		}
		for _, rule := range rules {
			rule.Apply(ctx)
		}
		tile, ok := ctx.Best()
		if !ok {
			return app.Command{Kind: app.CommandPass}, nil
		}
		return app.Command{Kind: app.CommandPlaceTile, Tile: tile}, nil

	case domain.PhaseFoundChain:
		corp := highestTier(game)
		if held := mostHeld(player, game.Chains.Inactive()); player.Holdings[held] > 0 {
			corp = held
		}
		return app.Command{Kind: app.CommandFoundChain, Corporation: corp}, nil

	case domain.PhaseMergerResolution:
		m := game.Merger
		if m.SurvivorPending {
			return app.Command{Kind: app.CommandSelectSurvivor, Corporation: mostHeld(player, m.Tied(game.Chains))}, nil
		}
		if player.Holdings[m.Liquidating] >= b.Tuning.TradeMinShares && game.Market.Available[m.Survivor] > 0 {
			return app.Command{Kind: app.CommandDispose, Action: app.DispositionTrade}, nil
		}
		return app.Command{Kind: app.CommandDispose, Action: app.DispositionSell}, nil

	case domain.PhaseBuyStocks:
		if EndConditionMet(game) {
			return app.Command{Kind: app.CommandEndGame}, nil
		}
		options := affordable(game, player, player.Cash-b.Tuning.CashReserve)
		if len(options) > 0 {
			return app.Command{Kind: app.CommandBuyStock, Corporation: mostHeld(player, options)}, nil
		}
		return app.Command{Kind: app.CommandEndTurn}, nil
	}
	return app.Command{}, ErrNoMove
}

// mostHeld returns the corporation the player holds most shares of, first among equals.
func mostHeld(player *domain.Player, corps []domain.Corporation) domain.Corporation {
	best := corps[0]
	for _, c := range corps[1:] {
		if player.Holdings[c] > player.Holdings[best] {
			best = c
		}
	}
	return best
}
