package domain

// StockMarket holds the unsold share pool of every corporation and the
// purchase counter of the turn in progress.
type StockMarket struct {
	Available     map[Corporation]int `json:"available"`
	TurnPurchases int                 `json:"turn_purchases"`
}

// NewStockMarket fills every corporation's pool with shares.
func NewStockMarket(shares int) StockMarket {
	available := make(map[Corporation]int, len(Corporations))
	for _, c := range Corporations {
		available[c] = shares
	}
	return StockMarket{Available: available}
}

// Buy sells count shares of c to p at the given price snapshot.
// Checks run before any mutation so a failed purchase changes nothing.
func (m *StockMarket) Buy(p *Player, c Corporation, count, price, maxPerTurn int) error {
	if m.TurnPurchases+count > maxPerTurn {
		return ErrPurchaseLimitExceeded
	}
	if m.Available[c] < count {
		return ErrMarketExhausted
	}
	cost := count * price
	if p.Cash < cost {
		return ErrInsufficientFunds
	}

	p.Cash -= cost
	m.Available[c] -= count
	p.Holdings[c] += count
	m.TurnPurchases += count
	return nil
}

// Grant gives p one free share of c if the pool has any left.
func (m *StockMarket) Grant(p *Player, c Corporation) bool {
	if m.Available[c] <= 0 {
		return false
	}
	m.Available[c]--
	p.Holdings[c]++
	return true
}

// Sell returns all of p's shares in c to the pool at price and reports the
// number of shares sold.
func (m *StockMarket) Sell(p *Player, c Corporation, price int) int {
	n := p.Holdings[c]
	if n == 0 {
		return 0
	}
	p.Cash += n * price
	p.Holdings[c] = 0
	m.Available[c] += n
	return n
}

// Trade converts p's shares of defunct into survivor shares two-for-one,
// bounded by the survivor's pool. It returns the survivor shares received.
func (m *StockMarket) Trade(p *Player, defunct, survivor Corporation) int {
	pairs := p.Holdings[defunct] / 2
	if pairs > m.Available[survivor] {
		pairs = m.Available[survivor]
	}
	if pairs == 0 {
		return 0
	}
	p.Holdings[defunct] -= pairs * 2
	m.Available[defunct] += pairs * 2
	p.Holdings[survivor] += pairs
	m.Available[survivor] -= pairs
	return pairs
}

// ResetTurn clears the per-turn purchase counter.
func (m *StockMarket) ResetTurn() {
	m.TurnPurchases = 0
}

func (m StockMarket) clone() StockMarket {
	available := make(map[Corporation]int, len(m.Available))
	for c, n := range m.Available {
		available[c] = n
	}
	return StockMarket{Available: available, TurnPurchases: m.TurnPurchases}
}
