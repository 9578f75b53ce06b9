package app

import (
	"sort"

	"acquire/internal/domain"
)

// FinalStandings values every seated player's shares of active corporations at
// the current price and ranks players by resulting cash. Equal cash keeps turn
// order. Shares of inactive corporations are worth nothing.
func FinalStandings(g *domain.Game) []domain.Standing {
	active := g.Chains.ActiveCorporations()
	seated := g.Seated()
	out := make([]domain.Standing, 0, len(seated))
	for _, pl := range seated {
		cash := pl.Cash
		for _, c := range active {
			cash += pl.Holdings[c] * domain.Price(c, g.Chains.Size(c))
		}
		out = append(out, domain.Standing{UserID: pl.UserID, Cash: cash})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cash > out[j].Cash })
	return out
}
