package bot

import (
	"acquire/internal/app"
	"acquire/internal/domain"
)

// Brain is the interface that all bot strategies must implement.
// Decide is only called when the player is the game's pending actor.
type Brain interface {
	Decide(game *domain.Game, player *domain.Player) (app.Command, error)
}

// BotLevel selects a Brain implementation.
type BotLevel int

const (
	BotLevelGood BotLevel = iota
	BotLevelSmart
)
