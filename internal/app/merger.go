package app

import (
	"sort"

	"acquire/internal/domain"
)

// startMerger opens the merger context for a placement touching two or more
// chains. The survivor is resolved immediately unless the largest chains tie.
func (s *Service) startMerger(g *domain.Game, corps []domain.Corporation, trigger domain.Tile) []Event {
	m := &domain.MergerContext{
		Candidates:       g.Chains.BySizeDesc(corps),
		Trigger:          trigger,
		MakerIndex:       g.CurrentTurn,
		DispositionIndex: -1,
	}
	g.Merger = m

	started := MergerStartedPayload{
		UserID:     g.CurrentPlayer().UserID,
		Trigger:    trigger,
		Candidates: append([]domain.Corporation(nil), m.Candidates...),
	}
	tied := m.Tied(g.Chains)
	if len(tied) > 1 {
		m.SurvivorPending = true
		started.Tied = tied
		return []Event{{Kind: EventMergerStarted, Payload: started}}
	}

	events := []Event{{Kind: EventMergerStarted, Payload: started}}
	return append(events, s.resolveSurvivor(g, m.Candidates[0])...)
}

// SelectSurvivor lets the merger maker break a tie for the largest chain.
func (s *Service) SelectSurvivor(game *domain.Game, actorID string, corp domain.Corporation) (*domain.Game, []Event, error) {
	g, _, err := s.begin(game, actorID, domain.PhaseMergerResolution)
	if err != nil {
		return nil, nil, err
	}
	if !g.Merger.SurvivorPending {
		return nil, nil, domain.ErrInvalidPhase
	}
	tied := false
	for _, c := range g.Merger.Tied(g.Chains) {
		if c == corp {
			tied = true
			break
		}
	}
	if !tied {
		return nil, nil, domain.ErrInvalidSurvivor
	}

	return g, s.resolveSurvivor(g, corp), nil
}

// Dispose applies the pending shareholder's choice for the corporation being
// liquidated and moves the cycle to the next holder.
func (s *Service) Dispose(game *domain.Game, actorID string, action Disposition) (*domain.Game, []Event, error) {
	if game.Phase == domain.PhaseFinished {
		return nil, nil, domain.ErrGameFinished
	}
	if game.Phase != domain.PhaseMergerResolution || game.Merger.SurvivorPending || game.Merger.DispositionIndex < 0 {
		return nil, nil, domain.ErrInvalidPhase
	}
	if _, ok := game.PlayerByID(actorID); !ok {
		return nil, nil, domain.ErrUnknownPlayer
	}
	if game.PendingActor().UserID != actorID || !action.Valid() {
		return nil, nil, domain.ErrInvalidDispositionChoice
	}

	g := game.Clone()
	m := g.Merger
	pl := g.Seated()[m.DispositionIndex]
	defunct := m.Liquidating

	disposed := SharesDisposedPayload{UserID: actorID, Corporation: defunct, Action: action}
	switch action {
	case DispositionSell:
		price := domain.Price(defunct, g.Chains.Size(defunct))
		disposed.Sold = g.Market.Sell(pl, defunct, price)
	case DispositionTrade:
		disposed.Received = g.Market.Trade(pl, defunct, m.Survivor)
		disposed.Traded = disposed.Received * 2
	}
	disposed.Kept = pl.Holdings[defunct]

	events := []Event{{Kind: EventSharesDisposed, Payload: disposed}}
	return g, append(events, s.advanceDisposition(g)...), nil
}

func (s *Service) resolveSurvivor(g *domain.Game, survivor domain.Corporation) []Event {
	m := g.Merger
	m.Survivor = survivor
	m.SurvivorPending = false
	m.Remaining = nil
	for _, c := range m.Candidates {
		if c != survivor {
			m.Remaining = append(m.Remaining, c)
		}
	}
	// Candidates are sorted by size only; re-sort the defunct set for a fixed order.
	m.Remaining = g.Chains.BySizeDesc(m.Remaining)

	events := []Event{{Kind: EventSurvivorSelected, Payload: SurvivorSelectedPayload{
		Survivor: survivor,
		Defunct:  append([]domain.Corporation(nil), m.Remaining...),
	}}}
	return append(events, s.nextDefunct(g)...)
}

// nextDefunct starts liquidating the next defunct corporation, or closes the
// merger when none remain.
func (s *Service) nextDefunct(g *domain.Game) []Event {
	m := g.Merger
	if len(m.Remaining) == 0 {
		survivor := m.Survivor
		g.Merger = nil
		g.Phase = domain.PhaseBuyStocks
		return []Event{{Kind: EventMergerCompleted, Payload: MergerCompletedPayload{
			Survivor: survivor,
			Size:     g.Chains.Size(survivor),
		}}}
	}

	m.Liquidating = m.Remaining[0]
	m.Remaining = m.Remaining[1:]
	m.DispositionIndex = -1

	events := payBonuses(g, m.Liquidating)
	return append(events, s.seekHolder(g, 0)...)
}

// advanceDisposition moves past the player who just disposed.
func (s *Service) advanceDisposition(g *domain.Game) []Event {
	m := g.Merger
	n := len(g.Seated())
	offset := (m.DispositionIndex - m.MakerIndex + n) % n
	return s.seekHolder(g, offset+1)
}

// seekHolder scans the cycle that starts at the merger maker, from the given
// offset, for the next player holding shares of the liquidating corporation.
// Reaching the end of the cycle finalizes that corporation.
func (s *Service) seekHolder(g *domain.Game, offset int) []Event {
	m := g.Merger
	seated := g.Seated()
	n := len(seated)
	for k := offset; k < n; k++ {
		idx := (m.MakerIndex + k) % n
		pl := seated[idx]
		if pl.Holdings[m.Liquidating] == 0 {
			continue
		}
		m.DispositionIndex = idx
		return []Event{{Kind: EventDispositionDue, Payload: DispositionDuePayload{
			UserID:      pl.UserID,
			Corporation: m.Liquidating,
			Shares:      pl.Holdings[m.Liquidating],
			Price:       domain.Price(m.Liquidating, g.Chains.Size(m.Liquidating)),
		}}}
	}
	return s.finalizeDefunct(g)
}

func (s *Service) finalizeDefunct(g *domain.Game) []Event {
	m := g.Merger
	defunct := m.Liquidating
	g.Chains.Merge(&g.Board, m.Survivor, []domain.Corporation{defunct}, m.Trigger)
	m.Liquidating = domain.NoCorporation
	m.DispositionIndex = -1

	events := []Event{{Kind: EventChainDissolved, Payload: ChainDissolvedPayload{
		Corporation:  defunct,
		Survivor:     m.Survivor,
		SurvivorSize: g.Chains.Size(m.Survivor),
	}}}
	return append(events, s.nextDefunct(g)...)
}

// payBonuses pays the majority and minority bonuses of a corporation about to
// be dissolved, priced at its current size.
func payBonuses(g *domain.Game, defunct domain.Corporation) []Event {
	var holders []*domain.Player
	for _, pl := range g.Seated() {
		if pl.Holdings[defunct] > 0 {
			holders = append(holders, pl)
		}
	}
	if len(holders) == 0 {
		return nil
	}
	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].Holdings[defunct] > holders[j].Holdings[defunct]
	})

	size := g.Chains.Size(defunct)
	majority := domain.MajorityBonus(defunct, size)
	minority := domain.MinorityBonus(defunct, size)

	first := leadingGroup(holders, defunct)
	if len(first) > 1 {
		return pay(first, defunct, BonusShared, domain.SplitBonus(majority+minority, len(first)))
	}

	events := pay(first, defunct, BonusMajority, domain.RoundUpHundred(majority))
	if rest := holders[1:]; len(rest) > 0 {
		second := leadingGroup(rest, defunct)
		events = append(events, pay(second, defunct, BonusMinority, domain.SplitBonus(minority, len(second)))...)
	}
	return events
}

// leadingGroup returns the prefix of holders sharing the first holder's count.
func leadingGroup(holders []*domain.Player, c domain.Corporation) []*domain.Player {
	top := holders[0].Holdings[c]
	n := 1
	for n < len(holders) && holders[n].Holdings[c] == top {
		n++
	}
	return holders[:n]
}

func pay(players []*domain.Player, c domain.Corporation, kind BonusKind, amount int) []Event {
	events := make([]Event, 0, len(players))
	for _, pl := range players {
		pl.Cash += amount
		events = append(events, Event{Kind: EventBonusPaid, Payload: BonusPaidPayload{
			Corporation: c,
			UserID:      pl.UserID,
			Kind:        kind,
			Amount:      amount,
		}})
	}
	return events
}
