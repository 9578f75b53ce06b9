package domain

// Phase is the turn step the game is waiting on.
type Phase string

const (
	// PhasePlaceTile waits for the current player to place a tile.
	PhasePlaceTile Phase = "place_tile"
	// PhaseFoundChain waits for the current player to name a new chain.
	PhaseFoundChain Phase = "found_chain"
	// PhaseMergerResolution waits for a survivor choice or a disposition.
	PhaseMergerResolution Phase = "merger_resolution"
	// PhaseBuyStocks lets the current player buy shares, end the turn, or end the game.
	PhaseBuyStocks Phase = "buy_stocks"
	// PhaseFinished is terminal; the game is read-only.
	PhaseFinished Phase = "finished"
)

// Settings are the rule parameters a game was started with.
type Settings struct {
	StartingCash         int `json:"starting_cash"`
	HandSize             int `json:"hand_size"`
	MaxPurchasesPerTurn  int `json:"max_purchases_per_turn"`
	SafeChainSize        int `json:"safe_chain_size"`
	SharesPerCorporation int `json:"shares_per_corporation"`
	MinPlayers           int `json:"min_players"`
	MaxPlayers           int `json:"max_players"`
}

// DefaultSettings returns the standard rules.
func DefaultSettings() Settings {
	return Settings{
		StartingCash:         6000,
		HandSize:             6,
		MaxPurchasesPerTurn:  3,
		SafeChainSize:        11,
		SharesPerCorporation: 25,
		MinPlayers:           2,
		MaxPlayers:           6,
	}
}

// Player holds the state of one participant. Spectators hold nothing and never take a turn.
type Player struct {
	UserID    string              `json:"user_id"`
	Order     int                 `json:"order"`
	Cash      int                 `json:"cash"`
	Hand      []Tile              `json:"hand"`
	Holdings  map[Corporation]int `json:"holdings"`
	Spectator bool                `json:"spectator"`
}

// NewPlayer returns a player with an empty hand and no holdings.
func NewPlayer(userID string, order, cash int) *Player {
	return &Player{
		UserID:   userID,
		Order:    order,
		Cash:     cash,
		Hand:     []Tile{},
		Holdings: make(map[Corporation]int),
	}
}

// MergerContext carries an in-progress merger.
type MergerContext struct {
	// Candidates are all participating corporations, largest first.
	Candidates []Corporation `json:"candidates"`
	// Trigger is the placed tile that caused the merger.
	Trigger Tile `json:"trigger"`
	// MakerIndex is the seated index of the player who placed Trigger.
	MakerIndex int `json:"maker_index"`
	// Survivor is NoCorporation while SurvivorPending is true.
	Survivor        Corporation `json:"survivor"`
	SurvivorPending bool        `json:"survivor_pending"`
	// Liquidating is the defunct corporation whose holders are disposing.
	Liquidating Corporation `json:"liquidating"`
	// Remaining defunct corporations, in liquidation order.
	Remaining []Corporation `json:"remaining"`
	// DispositionIndex is the seated index of the player who must dispose next, or -1.
	DispositionIndex int `json:"disposition_index"`
}

// Tied returns the candidates sharing the largest size.
func (m *MergerContext) Tied(r ChainRegistry) []Corporation {
	if len(m.Candidates) == 0 {
		return nil
	}
	top := r.Size(m.Candidates[0])
	var out []Corporation
	for _, c := range m.Candidates {
		if r.Size(c) == top {
			out = append(out, c)
		}
	}
	return out
}

func (m *MergerContext) clone() *MergerContext {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Candidates = append([]Corporation(nil), m.Candidates...)
	cp.Remaining = append([]Corporation(nil), m.Remaining...)
	return &cp
}

// Standing is one line of the final ranking.
type Standing struct {
	UserID string `json:"user_id"`
	Cash   int    `json:"cash"`
}

// Game is the complete, serializable state of one game.
type Game struct {
	ID          string   `json:"id"`
	OwnerUserID string   `json:"owner_user_id"`
	Settings    Settings `json:"settings"`

	Phase  Phase         `json:"phase"`
	Board  Board         `json:"board"`
	Chains ChainRegistry `json:"chains"`
	Market StockMarket   `json:"market"`

	// Players lists seated players in turn order, followed by spectators.
	Players []*Player `json:"players"`
	// CurrentTurn indexes the seated players.
	CurrentTurn int `json:"current_turn"`

	// FoundingTile is the tile awaiting a chain name in PhaseFoundChain.
	FoundingTile *Tile `json:"founding_tile,omitempty"`
	// Merger is set only in PhaseMergerResolution.
	Merger *MergerContext `json:"merger,omitempty"`

	Pool      []Tile     `json:"pool"`
	Standings []Standing `json:"standings,omitempty"`
}

// Seated returns the non-spectator players in turn order.
func (g *Game) Seated() []*Player {
	out := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if !p.Spectator {
			out = append(out, p)
		}
	}
	return out
}

// PlayerByID finds a player, spectators included.
func (g *Game) PlayerByID(userID string) (*Player, bool) {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	seated := g.Seated()
	if len(seated) == 0 {
		return nil
	}
	return seated[g.CurrentTurn%len(seated)]
}

// PendingActor returns the single player allowed to act now, or nil once finished.
func (g *Game) PendingActor() *Player {
	switch g.Phase {
	case PhaseFinished:
		return nil
	case PhaseMergerResolution:
		if g.Merger != nil && !g.Merger.SurvivorPending && g.Merger.DispositionIndex >= 0 {
			return g.Seated()[g.Merger.DispositionIndex]
		}
	}
	return g.CurrentPlayer()
}

// IsDeadTile reports whether placing t would merge two safe chains.
func (g *Game) IsDeadTile(t Tile) bool {
	corps := g.Board.AdjacentCorporations(t)
	if len(corps) < 2 {
		return false
	}
	return g.Chains.CheckMergeable(corps, g.Settings.SafeChainSize) != nil
}

// Draw moves up to n tiles from the pool into p's hand and returns them.
func (g *Game) Draw(p *Player, n int) []Tile {
	if n > len(g.Pool) {
		n = len(g.Pool)
	}
	if n <= 0 {
		return nil
	}
	drawn := append([]Tile(nil), g.Pool[:n]...)
	g.Pool = g.Pool[n:]
	p.Hand = append(p.Hand, drawn...)
	return drawn
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Board = g.Board.clone()
	cp.Chains = g.Chains.clone()
	cp.Market = g.Market.clone()
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		pc := *p
		pc.Hand = append([]Tile{}, p.Hand...)
		pc.Holdings = make(map[Corporation]int, len(p.Holdings))
		for c, n := range p.Holdings {
			pc.Holdings[c] = n
		}
		cp.Players[i] = &pc
	}
	if g.FoundingTile != nil {
		t := *g.FoundingTile
		cp.FoundingTile = &t
	}
	cp.Merger = g.Merger.clone()
	cp.Pool = append([]Tile{}, g.Pool...)
	if g.Standings != nil {
		cp.Standings = append([]Standing(nil), g.Standings...)
	}
	return &cp
}
