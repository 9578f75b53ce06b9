package nakama

import (
	"acquire/internal/app"
	"acquire/internal/bot"
	"acquire/internal/domain"
)

// PlayerView is the public part of a player's state.
type PlayerView struct {
	UserID      string                     `json:"user_id"`
	DisplayName string                     `json:"display_name"`
	Order       int                        `json:"order"`
	Cash        int                        `json:"cash"`
	HandCount   int                        `json:"hand_count"`
	Holdings    map[domain.Corporation]int `json:"holdings"`
	Spectator   bool                       `json:"spectator"`
	IsBot       bool                       `json:"is_bot"`
}

// ChainView summarizes one corporation.
type ChainView struct {
	Corporation domain.Corporation `json:"corporation"`
	Size        int                `json:"size"`
	Price       int                `json:"price"`
	Safe        bool               `json:"safe"`
	Available   int                `json:"available"`
}

// GameView is the game as one recipient may see it. Only Hand and LegalTiles
// are private; they are filled for the recipient alone, in rank order.
type GameView struct {
	GameID        string                `json:"game_id"`
	Phase         domain.Phase          `json:"phase"`
	Board         domain.Board          `json:"board"`
	Chains        []ChainView           `json:"chains"`
	Players       []PlayerView          `json:"players"`
	CurrentUserID string                `json:"current_user_id"`
	PendingUserID string                `json:"pending_user_id,omitempty"`
	FoundingTile  *domain.Tile          `json:"founding_tile,omitempty"`
	Merger        *domain.MergerContext `json:"merger,omitempty"`
	PoolRemaining int                   `json:"pool_remaining"`
	Purchases     int                   `json:"turn_purchases"`
	Standings     []domain.Standing     `json:"standings,omitempty"`

	Hand       []domain.Tile `json:"hand,omitempty"`
	LegalTiles []domain.Tile `json:"legal_tiles,omitempty"`
}

// LobbyView is the seat map broadcast while players gather.
type LobbyView struct {
	Seats     []string     `json:"seats"`
	OwnerSeat int          `json:"owner_seat"`
	Tick      int64        `json:"tick"`
	Players   []PlayerView `json:"players"`
}

func buildGameView(svc *app.Service, g *domain.Game, recipient string, names func(string) string) GameView {
	view := GameView{
		GameID:        g.ID,
		Phase:         g.Phase,
		Board:         g.Board,
		Merger:        g.Merger,
		FoundingTile:  g.FoundingTile,
		PoolRemaining: len(g.Pool),
		Purchases:     g.Market.TurnPurchases,
		Standings:     g.Standings,
	}
	if cur := g.CurrentPlayer(); cur != nil {
		view.CurrentUserID = cur.UserID
	}
	if pending := g.PendingActor(); pending != nil {
		view.PendingUserID = pending.UserID
	}
	for _, c := range domain.Corporations {
		size := g.Chains.Size(c)
		view.Chains = append(view.Chains, ChainView{
			Corporation: c,
			Size:        size,
			Price:       domain.Price(c, size),
			Safe:        g.Chains.Safe(c, g.Settings.SafeChainSize),
			Available:   g.Market.Available[c],
		})
	}
	for _, p := range g.Players {
		view.Players = append(view.Players, PlayerView{
			UserID:      p.UserID,
			DisplayName: names(p.UserID),
			Order:       p.Order,
			Cash:        p.Cash,
			HandCount:   len(p.Hand),
			Holdings:    p.Holdings,
			Spectator:   p.Spectator,
			IsBot:       bot.IsBot(p.UserID),
		})
		if p.UserID == recipient && !p.Spectator {
			view.Hand = append([]domain.Tile(nil), p.Hand...)
			domain.SortTiles(view.Hand)
			view.LegalTiles = svc.LegalTiles(g, p.UserID)
			domain.SortTiles(view.LegalTiles)
		}
	}
	return view
}
