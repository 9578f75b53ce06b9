package bot

import (
	"errors"

	"acquire/internal/app"
	"acquire/internal/domain"
)

// ErrNotPending is returned when the agent is asked to act while another player holds the turn.
var ErrNotPending = errors.New("bot is not the pending actor")

// ErrNoMove is returned when the pending bot has no legal action.
var ErrNoMove = errors.New("bot has no legal move")

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent creates an agent for the given identity with the brain of the requested level.
func NewAgent(id, name string, level BotLevel) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: id, Name: name, Strategy: brain}, nil
}

// Play asks the agent for its next command in the current game state.
func (a *Agent) Play(game *domain.Game) (app.Command, error) {
	actor := game.PendingActor()
	if actor == nil || actor.UserID != a.ID {
		return app.Command{}, ErrNotPending
	}
	return a.Strategy.Decide(game, actor)
}
