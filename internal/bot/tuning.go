package bot

// Tuning weighs the SmartBot placement rules and bounds its spending.
type Tuning struct {
	// GrowWeight scores a placement by the shares held in the chain it grows.
	GrowWeight float64
	// FoundWeight is the flat score of a placement that founds a chain.
	FoundWeight float64
	// MergeWeight scores a merger by the shares held in the chains it dissolves.
	MergeWeight float64
	// CashReserve is the cash the bot keeps back when buying.
	CashReserve int
	// TradeMinShares is the smallest holding the bot trades instead of selling.
	TradeMinShares int
}

// DefaultTuning favors founding, then mergers the bot profits from, then growth.
var DefaultTuning = Tuning{
	GrowWeight:     1.0,
	FoundWeight:    4.0,
	MergeWeight:    2.0,
	CashReserve:    1000,
	TradeMinShares: 4,
}
