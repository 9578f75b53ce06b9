package nakama

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	labelGame = "acquire"

	phaseLobby    = "lobby"
	phasePlaying  = "playing"
	phaseFinished = "finished"
)

// encodeLabel renders the match label searched by the quick-match query,
// e.g. {"game":"acquire","open":5,"phase":"lobby"}.
func encodeLabel(open int, phase string) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		"game":  labelGame,
		"open":  open,
		"phase": phase,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build label: %w", err)
	}
	b, err := protojson.Marshal(label)
	if err != nil {
		return "", fmt.Errorf("failed to marshal label: %w", err)
	}
	return string(b), nil
}

// quickMatchQuery finds lobbies of this game with at least one open seat.
func quickMatchQuery() string {
	return fmt.Sprintf("+label.game:%s +label.phase:%s +label.open:>=1", labelGame, phaseLobby)
}
