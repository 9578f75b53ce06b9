package bot

import (
	"acquire/internal/domain"
)

// TileCandidate is a legal placement and its accumulated score.
type TileCandidate struct {
	Tile  domain.Tile
	Score float64
}

// SelectionContext holds the state for the placement decision pipeline.
type SelectionContext struct {
	Game       *domain.Game
	Player     *domain.Player
	Tuning     Tuning
	Candidates []TileCandidate
}

// SelectionRule represents a logic unit that can influence which tile is placed.
type SelectionRule interface {
	Name() string
	Apply(ctx *SelectionContext)
}

// Best returns the highest scored candidate, lowest rank first among equals.
func (ctx *SelectionContext) Best() (domain.Tile, bool) {
	if len(ctx.Candidates) == 0 {
		return domain.Tile{}, false
	}
	best := ctx.Candidates[0]
	for _, c := range ctx.Candidates[1:] {
		if c.Score > best.Score || (c.Score == best.Score && c.Tile.Rank() < best.Tile.Rank()) {
			best = c
		}
	}
	return best.Tile, true
}

// FavorGrowthRule rewards growing a chain the player holds shares in.
type FavorGrowthRule struct{}

func (r *FavorGrowthRule) Name() string { return "FavorGrowth" }

func (r *FavorGrowthRule) Apply(ctx *SelectionContext) {
	for i := range ctx.Candidates {
		corps := ctx.Game.Board.AdjacentCorporations(ctx.Candidates[i].Tile)
		if len(corps) == 1 {
			ctx.Candidates[i].Score += ctx.Tuning.GrowWeight * float64(ctx.Player.Holdings[corps[0]])
		}
	}
}

// FavorFoundingRule rewards placements that found a new chain.
type FavorFoundingRule struct{}

func (r *FavorFoundingRule) Name() string { return "FavorFounding" }

func (r *FavorFoundingRule) Apply(ctx *SelectionContext) {
	if len(ctx.Game.Chains.Inactive()) == 0 {
		return
	}
	for i := range ctx.Candidates {
		t := ctx.Candidates[i].Tile
		if len(ctx.Game.Board.AdjacentCorporations(t)) == 0 && len(ctx.Game.Board.PlacedNeighbors(t)) > 0 {
			ctx.Candidates[i].Score += ctx.Tuning.FoundWeight
		}
	}
}

// FavorPayoutRule rewards mergers that dissolve chains the player holds shares in.
type FavorPayoutRule struct{}

func (r *FavorPayoutRule) Name() string { return "FavorPayout" }

func (r *FavorPayoutRule) Apply(ctx *SelectionContext) {
	for i := range ctx.Candidates {
		corps := ctx.Game.Board.AdjacentCorporations(ctx.Candidates[i].Tile)
		if len(corps) < 2 {
			continue
		}
		// The largest chain survives; every other one pays out.
		for _, c := range ctx.Game.Chains.BySizeDesc(corps)[1:] {
			ctx.Candidates[i].Score += ctx.Tuning.MergeWeight * float64(ctx.Player.Holdings[c])
		}
	}
}

// DefaultRules is the rule order used by SmartBot.
func DefaultRules() []SelectionRule {
	return []SelectionRule{&FavorFoundingRule{}, &FavorPayoutRule{}, &FavorGrowthRule{}}
}
