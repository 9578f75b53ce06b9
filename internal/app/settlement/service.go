package settlement

import (
	"context"
	"fmt"

	"acquire/internal/domain"
	"acquire/internal/ports"
)

// Result captures the outcome of a settlement.
type Result struct {
	// Winners are the paid user ids, in standings order.
	Winners []string
	// Amount is the prize each winner received.
	Amount int64
	// Granted is false when nothing was paid, either because there was no
	// prize or because the game had been settled before.
	Granted bool
}

// Service pays the configured wallet prize to the winners of finished games.
type Service struct {
	economy ports.EconomyPort
	prize   int64
	skip    func(userID string) bool
}

// NewService constructs a settlement service.
// skip may be nil; users it reports true for (bots) never receive a prize.
func NewService(economy ports.EconomyPort, prize int64, skip func(userID string) bool) *Service {
	if skip == nil {
		skip = func(string) bool { return false }
	}
	return &Service{economy: economy, prize: prize, skip: skip}
}

// Settle splits the prize evenly among the players tied for first place.
// Side effects: updates wallets through the economy port, once per game.
func (s *Service) Settle(ctx context.Context, game *domain.Game) (Result, error) {
	if game.Phase != domain.PhaseFinished {
		return Result{}, domain.ErrGameNotFinished
	}
	if s.prize <= 0 || len(game.Standings) == 0 {
		return Result{}, nil
	}
	if s.economy == nil {
		return Result{}, fmt.Errorf("settlement service not configured")
	}

	top := game.Standings[0].Cash
	var winners []string
	for _, st := range game.Standings {
		if st.Cash != top {
			break
		}
		if !s.skip(st.UserID) {
			winners = append(winners, st.UserID)
		}
	}
	if len(winners) == 0 {
		return Result{}, nil
	}

	amount := s.prize / int64(len(winners))
	updates := make([]ports.WalletUpdate, 0, len(winners))
	for _, id := range winners {
		updates = append(updates, ports.WalletUpdate{
			UserID: id,
			Amount: amount,
			Metadata: map[string]interface{}{
				"reason":  "game_prize",
				"game_id": game.ID,
			},
		})
	}

	granted, err := s.economy.AwardOnce(ctx, game.ID, updates)
	if err != nil {
		return Result{}, fmt.Errorf("failed to award prize: %w", err)
	}
	if !granted {
		return Result{}, nil
	}
	return Result{Winners: winners, Amount: amount, Granted: true}, nil
}
