package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"acquire/internal/app"
	"acquire/internal/bot"
	"acquire/internal/config"
	"acquire/internal/domain"
	"acquire/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode    int64
	data      []byte
	presences []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages []sentMessage
	labels   []string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{opCode: opCode, data: append([]byte(nil), data...), presences: presences})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labels = append(md.labels, label)
	return nil
}

// sentTo returns the payloads of opCode delivered to userID, broadcasts included.
func (md *mockDispatcher) sentTo(userID string, opCode int64) [][]byte {
	var out [][]byte
	for _, m := range md.messages {
		if m.opCode != opCode {
			continue
		}
		if len(m.presences) == 0 {
			out = append(out, m.data)
			continue
		}
		for _, p := range m.presences {
			if p.GetUserId() == userID {
				out = append(out, m.data)
			}
		}
	}
	return out
}

type fakePresence struct {
	userID   string
	username string
}

func (p fakePresence) GetHidden() bool                   { return false }
func (p fakePresence) GetPersistence() bool              { return false }
func (p fakePresence) GetUsername() string               { return p.username }
func (p fakePresence) GetStatus() string                 { return "" }
func (p fakePresence) GetReason() runtime.PresenceReason { return 0 }
func (p fakePresence) GetUserId() string                 { return p.userID }
func (p fakePresence) GetSessionId() string              { return "session-" + p.userID }
func (p fakePresence) GetNodeId() string                 { return "node" }

type fakeMatchData struct {
	fakePresence
	opCode int64
	data   []byte
}

func (d fakeMatchData) GetOpCode() int64      { return d.opCode }
func (d fakeMatchData) GetData() []byte       { return d.data }
func (d fakeMatchData) GetReliable() bool     { return true }
func (d fakeMatchData) GetReceiveTime() int64 { return 0 }

type fakeStore struct {
	games map[string]*domain.Game
	saves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{games: make(map[string]*domain.Game)}
}

func (s *fakeStore) Save(ctx context.Context, game *domain.Game) error {
	s.saves++
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *fakeStore) Load(ctx context.Context, gameID string) (*domain.Game, error) {
	g, ok := s.games[gameID]
	if !ok {
		return nil, ports.ErrSnapshotNotFound
	}
	return g.Clone(), nil
}

type fakeEconomy struct {
	awards map[string][]ports.WalletUpdate
}

func (e *fakeEconomy) AwardOnce(ctx context.Context, gameID string, updates []ports.WalletUpdate) (bool, error) {
	if e.awards == nil {
		e.awards = make(map[string][]ports.WalletUpdate)
	}
	if _, done := e.awards[gameID]; done {
		return false, nil
	}
	e.awards[gameID] = updates
	return true, nil
}

func testEnv() config.MatchEnv {
	return config.MatchEnv{
		BotsEnabled:         true,
		BotMinDelaySec:      1,
		BotMaxDelaySec:      1,
		BotAutoFillDelaySec: 2,
		SnapshotCollection:  "acquire_snapshots",
	}
}

func newTestState(store ports.SnapshotStore, economy ports.EconomyPort) *MatchState {
	rules := config.DefaultRules()
	rules.WinnerPrize = 1000
	return newMatchState(testEnv(), rules, store, economy)
}

func join(t *testing.T, mh *matchHandler, state *MatchState, dispatcher *mockDispatcher, userIDs ...string) {
	t.Helper()
	presences := make([]runtime.Presence, 0, len(userIDs))
	for _, id := range userIDs {
		presences = append(presences, fakePresence{userID: id, username: "name-" + id})
	}
	got := mh.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 0, state, presences)
	require.Same(t, state, got)
}

func lastGameView(t *testing.T, dispatcher *mockDispatcher, userID string) GameView {
	t.Helper()
	payloads := dispatcher.sentTo(userID, OpGameState)
	require.NotEmpty(t, payloads, "no game state sent to %s", userID)
	var view GameView
	require.NoError(t, json.Unmarshal(payloads[len(payloads)-1], &view))
	return view
}

func lastError(t *testing.T, dispatcher *mockDispatcher, userID string) GameError {
	t.Helper()
	payloads := dispatcher.sentTo(userID, OpGameError)
	require.NotEmpty(t, payloads, "no error sent to %s", userID)
	var gameErr GameError
	require.NoError(t, json.Unmarshal(payloads[len(payloads)-1], &gameErr))
	return gameErr
}

func TestFindFirstHumanSeat(t *testing.T) {
	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{"bot-0", "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{"bot-0", "bot-1", "", ""}, want: -1},
		{name: "Empty", seats: []string{"", "", "", ""}, want: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, findFirstHumanSeat(test.seats))
		})
	}
}

func TestMatchJoin_SeatsPlayersAndSetsOwner(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(nil, nil)

	join(t, mh, state, dispatcher, "user-1", "user-2")

	assert.Equal(t, "user-1", state.Seats[0])
	assert.Equal(t, "user-2", state.Seats[1])
	assert.Equal(t, 0, state.OwnerSeat)
	assert.Equal(t, 4, state.GetOpenSeatsCount())
	require.NotEmpty(t, dispatcher.labels)
	require.NotEmpty(t, dispatcher.sentTo("user-1", OpLobbyState))

	var label map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(dispatcher.labels[len(dispatcher.labels)-1]), &label))
	assert.Equal(t, "acquire", label["game"])
	assert.Equal(t, "lobby", label["phase"])
	assert.EqualValues(t, 4, label["open"])
}

func TestMatchJoinAttempt_FullLobby(t *testing.T) {
	mh := newMatchHandler()
	state := newTestState(nil, nil)
	for i := range state.Seats {
		state.Seats[i] = "user-" + string(rune('a'+i))
	}

	_, ok, reason := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, &mockDispatcher{}, 0, state, fakePresence{userID: "late"}, nil)
	assert.False(t, ok)
	assert.Equal(t, "Match full", reason)

	_, ok, _ = mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, &mockDispatcher{}, 0, state, fakePresence{userID: "late"}, map[string]string{MetadataSpectator: "true"})
	assert.True(t, ok)

	state.Seats[5] = "bot-5"
	_, ok, _ = mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, &mockDispatcher{}, 0, state, fakePresence{userID: "later"}, nil)
	assert.True(t, ok, "a bot seat can be taken over in the lobby")
}

func TestMatchJoin_SpectatorWatchesNextGame(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(nil, nil)
	join(t, mh, state, dispatcher, "user-1", "user-2")

	watcher := fakePresence{userID: "watcher", username: "watcher"}
	_, ok, _ := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 0, state, watcher, map[string]string{MetadataSpectator: "true"})
	require.True(t, ok)
	join(t, mh, state, dispatcher, "watcher")

	assert.Equal(t, -1, state.seatOf("watcher"))
	assert.True(t, state.Spectators["watcher"])
	assert.Equal(t, 2, state.GetOccupiedSeatCount())

	mh.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, "user-1")
	require.NotNil(t, state.Game)
	pl, ok := state.Game.PlayerByID("watcher")
	require.True(t, ok)
	assert.True(t, pl.Spectator)
	assert.Len(t, state.Game.Seated(), 2)

	view := lastGameView(t, dispatcher, "watcher")
	assert.Empty(t, view.Hand)
}

func TestMatchLeave_FreesLobbySeatAndTerminatesWhenEmpty(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(nil, nil)
	join(t, mh, state, dispatcher, "user-1", "user-2")

	got := mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 0, state, []runtime.Presence{fakePresence{userID: "user-1"}})
	require.Same(t, state, got)
	assert.Equal(t, "", state.Seats[0])
	assert.Equal(t, 1, state.OwnerSeat)

	got = mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 0, state, []runtime.Presence{fakePresence{userID: "user-2"}})
	assert.Nil(t, got)
}

func TestProcessBots_FillsSoloHumanTable(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(nil, nil)
	state.Seats[0] = "user-1"
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	mh.processBots(context.Background(), state, dispatcher, noopLogger{})

	bots := 0
	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			bots++
			assert.Contains(t, state.Bots, seat)
		}
	}
	assert.Equal(t, botFillTarget-1, bots)
	assert.Equal(t, int64(0), state.LastSinglePlayerTick)
	assert.NotEmpty(t, dispatcher.labels)
	assert.NotEmpty(t, dispatcher.sentTo("user-1", OpLobbyState))
}

func TestProcessBots_WaitsForFillDelay(t *testing.T) {
	mh := newMatchHandler()
	state := newTestState(nil, nil)
	state.Seats[0] = "user-1"
	state.Tick = 10

	mh.processBots(context.Background(), state, &mockDispatcher{}, noopLogger{})

	assert.Equal(t, int64(10), state.LastSinglePlayerTick)
	assert.Equal(t, 1, state.GetOccupiedSeatCount())
}

func TestStartGame_OwnerOnly(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	store := newFakeStore()
	state := newTestState(store, nil)
	join(t, mh, state, dispatcher, "user-1", "user-2")

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: "user-2"}, opCode: OpStartGame},
	})
	assert.Nil(t, state.Game)
	assert.Equal(t, errCodeBadRequest, lastError(t, dispatcher, "user-2").Code)

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame},
	})
	require.NotNil(t, state.Game)
	assert.Equal(t, domain.PhasePlaceTile, state.Game.Phase)
	assert.Equal(t, "user-1", state.Game.OwnerUserID)
	assert.Equal(t, 1, store.saves)

	var label map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(dispatcher.labels[len(dispatcher.labels)-1]), &label))
	assert.Equal(t, "playing", label["phase"])
	assert.EqualValues(t, 0, label["open"])
}

func TestStartGame_SendsPrivateHands(t *testing.T) {
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(nil, nil)
	join(t, mh, state, dispatcher, "user-1", "user-2")

	mh.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, "user-1")
	require.NotNil(t, state.Game)

	for _, id := range []string{"user-1", "user-2"} {
		view := lastGameView(t, dispatcher, id)
		pl, ok := state.Game.PlayerByID(id)
		require.True(t, ok)
		assert.ElementsMatch(t, pl.Hand, view.Hand)
		assert.Len(t, view.Players, 2)
		for _, pv := range view.Players {
			assert.Equal(t, 6, pv.HandCount)
		}
	}

	for _, payload := range dispatcher.sentTo("user-2", OpGameEvent) {
		var ev struct {
			Kind    app.EventKind   `json:"kind"`
			Payload json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(payload, &ev))
		if ev.Kind == app.EventHandDealt {
			var dealt app.HandDealtPayload
			require.NoError(t, json.Unmarshal(ev.Payload, &dealt))
			assert.Equal(t, "user-2", dealt.UserID)
		}
	}
}

func startedState(t *testing.T, store ports.SnapshotStore, economy ports.EconomyPort, players ...string) (*matchHandler, *MatchState, *mockDispatcher) {
	t.Helper()
	mh := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState(store, economy)
	var humans []string
	for _, id := range players {
		if !bot.IsBot(id) {
			humans = append(humans, id)
		}
	}
	join(t, mh, state, dispatcher, humans...)
	for i, id := range players {
		state.Seats[i] = id
	}
	mh.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, players[0])
	require.NotNil(t, state.Game)
	return mh, state, dispatcher
}

func TestApplyCommand_RejectsOutOfTurn(t *testing.T) {
	mh, state, dispatcher := startedState(t, nil, nil, "user-1", "user-2")
	before := state.Game

	waiting := state.Game.Seated()[1]
	payload, err := json.Marshal(map[string]string{"tile": waiting.Hand[0].String()})
	require.NoError(t, err)

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: waiting.UserID}, opCode: OpPlaceTile, data: payload},
	})

	assert.Same(t, before, state.Game)
	gameErr := lastError(t, dispatcher, waiting.UserID)
	assert.Equal(t, errCodeBadRequest, gameErr.Code)
	assert.Equal(t, domain.ErrNotYourTurn.Error(), gameErr.Message)
}

func TestApplyCommand_RejectsMalformedTile(t *testing.T) {
	mh, state, dispatcher := startedState(t, nil, nil, "user-1", "user-2")
	before := state.Game
	current := state.Game.CurrentPlayer().UserID

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: current}, opCode: OpPlaceTile, data: []byte(`{"tile":"99Z"}`)},
	})

	assert.Same(t, before, state.Game)
	assert.Equal(t, errCodeBadRequest, lastError(t, dispatcher, current).Code)
}

func TestApplyCommand_PlaceTilePublishesAndPersists(t *testing.T) {
	store := newFakeStore()
	mh, state, dispatcher := startedState(t, store, nil, "user-1", "user-2")
	current := state.Game.CurrentPlayer().UserID
	legal := state.App.LegalTiles(state.Game, current)
	require.NotEmpty(t, legal)

	payload, err := json.Marshal(map[string]string{"tile": legal[0].String()})
	require.NoError(t, err)
	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: current}, opCode: OpPlaceTile, data: payload},
	})

	assert.True(t, state.Game.Board.IsPlaced(legal[0]))
	assert.NotEqual(t, domain.PhasePlaceTile, state.Game.Phase)
	assert.Equal(t, 2, store.saves)

	saved, err := store.Load(context.Background(), state.Game.ID)
	require.NoError(t, err)
	assert.True(t, saved.Board.IsPlaced(legal[0]))

	view := lastGameView(t, dispatcher, current)
	assert.Equal(t, state.Game.Phase, view.Phase)
	assert.NotContains(t, view.Hand, legal[0])
}

func TestApplyCommand_EndGameSettlesOnce(t *testing.T) {
	economy := &fakeEconomy{}
	mh, state, dispatcher := startedState(t, nil, economy, "user-1", "user-2")
	state.Game.Phase = domain.PhaseBuyStocks
	winner := state.Game.CurrentPlayer()
	winner.Cash = 9000

	mh.applyCommand(context.Background(), state, dispatcher, noopLogger{}, winner.UserID, app.Command{Kind: app.CommandEndGame})

	assert.Equal(t, domain.PhaseFinished, state.Game.Phase)
	require.Contains(t, economy.awards, state.Game.ID)
	updates := economy.awards[state.Game.ID]
	require.Len(t, updates, 1)
	assert.Equal(t, winner.UserID, updates[0].UserID)
	assert.Equal(t, int64(1000), updates[0].Amount)

	var label map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(dispatcher.labels[len(dispatcher.labels)-1]), &label))
	assert.Equal(t, "finished", label["phase"])

	mh.applyCommand(context.Background(), state, dispatcher, noopLogger{}, winner.UserID, app.Command{Kind: app.CommandEndGame})
	assert.Equal(t, domain.ErrGameFinished.Error(), lastError(t, dispatcher, winner.UserID).Message)
	assert.Len(t, economy.awards, 1)
}

func TestProcessBots_BotActsAfterDelay(t *testing.T) {
	mh, state, dispatcher := startedState(t, nil, nil, "user-1", "bot-1")
	for i, pl := range state.Game.Seated() {
		if pl.UserID == "bot-1" {
			state.Game.CurrentTurn = i
		}
	}
	before := state.Game

	state.Tick = 10
	mh.processBots(context.Background(), state, dispatcher, noopLogger{})
	assert.Equal(t, int64(11), state.BotWaitUntil)
	assert.Same(t, before, state.Game)

	state.Tick = 11
	mh.processBots(context.Background(), state, dispatcher, noopLogger{})
	assert.NotSame(t, before, state.Game)
	assert.NotEqual(t, domain.PhasePlaceTile, state.Game.Phase)
	assert.Equal(t, int64(0), state.BotWaitUntil)
}

func TestResume_RestoresSeatsAndBots(t *testing.T) {
	store := newFakeStore()
	_, started, _ := startedState(t, store, nil, "user-1", "bot-1")

	mh := newMatchHandler()
	state := newTestState(store, nil)
	require.NoError(t, mh.resume(context.Background(), state, started.Game.ID))

	require.NotNil(t, state.Game)
	assert.Equal(t, started.Game.ID, state.Game.ID)
	for i, pl := range state.Game.Seated() {
		assert.Equal(t, pl.UserID, state.Seats[i])
	}
	assert.Equal(t, "user-1", state.Seats[state.OwnerSeat])
	assert.Contains(t, state.Bots, "bot-1")

	err := mh.resume(context.Background(), newTestState(store, nil), "missing")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}

func TestBuildGameView_HidesOtherHands(t *testing.T) {
	svc := app.NewService(nil, domain.DefaultSettings())
	game, _, err := svc.StartGame([]string{"user-1", "user-2"}, []string{"watcher"})
	require.NoError(t, err)
	names := func(id string) string { return id }

	view := buildGameView(svc, game, "user-1", names)
	pl, _ := game.PlayerByID("user-1")
	assert.ElementsMatch(t, pl.Hand, view.Hand)
	for i := 1; i < len(view.Hand); i++ {
		assert.Less(t, view.Hand[i-1].Rank(), view.Hand[i].Rank())
	}
	assert.Len(t, view.Chains, len(domain.Corporations))
	assert.Len(t, view.Players, 3)

	watcher := buildGameView(svc, game, "watcher", names)
	assert.Empty(t, watcher.Hand)
	assert.Empty(t, watcher.LegalTiles)
	assert.Equal(t, view.CurrentUserID, watcher.CurrentUserID)
}

func TestMatchLoop_PassWithoutPlayableTile(t *testing.T) {
	mh, state, dispatcher := startedState(t, nil, nil, "user-1", "user-2")
	current := state.Game.CurrentPlayer()
	current.Hand = nil
	state.Game.Pool = nil

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: current.UserID}, opCode: OpPass},
	})
	require.Equal(t, domain.PhaseBuyStocks, state.Game.Phase)

	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 6, state, []runtime.MatchData{
		fakeMatchData{fakePresence: fakePresence{userID: current.UserID}, opCode: OpEndGame},
	})
	assert.Equal(t, domain.PhaseFinished, state.Game.Phase)
}
