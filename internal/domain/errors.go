package domain

import "errors"

// Rule rejections. None of them leaves partial state behind.
var (
	ErrNotYourTurn                 = errors.New("not your turn")
	ErrInvalidPhase                = errors.New("action not allowed in current phase")
	ErrTileNotInHand               = errors.New("tile not in hand")
	ErrIllegalMergeOfTwoSafeChains = errors.New("placement would merge two safe chains")
	ErrUnknownOrActiveCorporation  = errors.New("corporation unknown or in the wrong state")
	ErrInsufficientFunds           = errors.New("insufficient funds")
	ErrMarketExhausted             = errors.New("no shares available")
	ErrPurchaseLimitExceeded       = errors.New("purchase limit reached for this turn")
	ErrInvalidDispositionChoice    = errors.New("invalid disposition choice")
	ErrInvalidSurvivor             = errors.New("corporation is not tied for survivor")
	ErrPlayableTileInHand          = errors.New("a playable tile is in hand")

	ErrUnknownPlayer   = errors.New("player not found")
	ErrGameFinished    = errors.New("game already finished")
	ErrGameNotFinished = errors.New("game not finished")
	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrTooManyPlayers  = errors.New("too many players to start")
	ErrDuplicatePlayer = errors.New("player listed twice")
)
