package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"acquire/internal/app"
	"acquire/internal/app/settlement"
	"acquire/internal/bot"
	"acquire/internal/config"
	"acquire/internal/domain"
	"acquire/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	// ParamResumeGameID names the match param holding a snapshot to restore.
	ParamResumeGameID = "resume_game_id"
	// MetadataSpectator marks a join request that wants to watch rather than play.
	MetadataSpectator = "spectator"

	// botFillTarget is the table size auto-fill brings a solo human up to.
	botFillTarget = 3

	errCodeBadRequest = 400
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats      [app.MaxSeats]string        `json:"seats"`      // user ids, empty string means seat is empty
	OwnerSeat  int                         `json:"owner_seat"` // seat index of the match owner
	Tick       int64                       `json:"tick"`
	Presences  map[string]runtime.Presence `json:"-"` // user id -> presence for targeted messaging
	Spectators map[string]bool             `json:"spectators"`
	App        *app.Service                `json:"-"`
	Game       *domain.Game                `json:"-"` // nil while in the lobby
	Env        config.MatchEnv             `json:"-"`
	Rules      config.RulesConfig          `json:"-"`

	BotWaitUntil         int64                 `json:"bot_wait_until"`          // tick when the pending bot acts
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"` // tick when a solo human started waiting
	Bots                 map[string]*bot.Agent `json:"-"`

	Store      ports.SnapshotStore  `json:"-"`
	Settlement *settlement.Service `json:"-"`
}

func newMatchState(env config.MatchEnv, rules config.RulesConfig, store ports.SnapshotStore, economy ports.EconomyPort) *MatchState {
	state := &MatchState{
		OwnerSeat:  -1,
		Tick:       time.Now().Unix(),
		Presences:  make(map[string]runtime.Presence),
		Spectators: make(map[string]bool),
		App:        app.NewService(nil, rules.Settings()),
		Env:        env,
		Rules:      rules,
		Bots:       make(map[string]*bot.Agent),
		Store:      store,
	}
	if economy != nil {
		state.Settlement = settlement.NewService(economy, rules.WinnerPrize, bot.IsBot)
	}
	return state
}

// capacity is the number of usable seats under the configured rules.
func (ms *MatchState) capacity() int {
	if ms.Rules.MaxPlayers > 0 && ms.Rules.MaxPlayers < len(ms.Seats) {
		return ms.Rules.MaxPlayers
	}
	return len(ms.Seats)
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats[:ms.capacity()] {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// inLobby reports whether seats may still change.
func (ms *MatchState) inLobby() bool {
	return ms.Game == nil || ms.Game.Phase == domain.PhaseFinished
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) displayName(userID string) string {
	if p, ok := ms.Presences[userID]; ok && p.GetUsername() != "" {
		return p.GetUsername()
	}
	if name := bot.GetBotDisplayName(userID); name != "" {
		return name
	}
	return userID
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i := range seats {
		if isHumanSeat(seats, i) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	vars, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	env, err := config.ParseMatchEnv(vars)
	if err != nil {
		logger.Warn("MatchInit: %v, using defaults", err)
		env, _ = config.ParseMatchEnv(nil)
	}

	state := newMatchState(env, config.GetRules(), NewNakamaSnapshotStore(nk, env.SnapshotCollection), NewNakamaEconomyAdapter(nk))

	if gameID, ok := params[ParamResumeGameID].(string); ok && gameID != "" {
		if err := mh.resume(ctx, state, gameID); err != nil {
			logger.Error("MatchInit: Failed to resume game %s: %v", gameID, err)
			return nil, 0, ""
		}
		logger.Info("MatchInit: Resumed game %s in phase %s", gameID, state.Game.Phase)
	}

	label, err := encodeLabel(mh.labelOpen(state), mh.labelPhase(state))
	if err != nil {
		logger.Error("MatchInit: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

// resume restores a persisted game and its seating.
func (mh *matchHandler) resume(ctx context.Context, state *MatchState, gameID string) error {
	if state.Store == nil {
		return ports.ErrSnapshotNotFound
	}
	game, err := state.Store.Load(ctx, gameID)
	if err != nil {
		return err
	}
	state.Game = game
	for i, pl := range game.Seated() {
		if i >= len(state.Seats) {
			break
		}
		state.Seats[i] = pl.UserID
		if pl.UserID == game.OwnerUserID {
			state.OwnerSeat = i
		}
		if bot.IsBot(pl.UserID) {
			mh.ensureAgent(state, pl.UserID, i)
		}
	}
	for _, pl := range game.Players {
		if pl.Spectator {
			state.Spectators[pl.UserID] = true
		}
	}
	return nil
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Running games accept reconnecting players and watchers.
	if !matchState.inLobby() {
		return state, true, ""
	}
	userID := presence.GetUserId()
	if matchState.seatOf(userID) >= 0 {
		return state, true, ""
	}
	if metadata[MetadataSpectator] == "true" {
		matchState.Spectators[userID] = true
		return state, true, ""
	}

	// Allow join if there is an empty seat or a bot to replace.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		for _, seat := range matchState.Seats {
			if bot.IsBot(seat) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		mh.seatPresence(matchState, logger, p)
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	return matchState
}

// seatPresence records the presence and, in the lobby, gives it a seat:
// an empty seat first, then a bot's seat.
func (mh *matchHandler) seatPresence(state *MatchState, logger runtime.Logger, p runtime.Presence) {
	userID := p.GetUserId()
	state.Presences[userID] = p

	if !state.inLobby() || state.Spectators[userID] || state.seatOf(userID) >= 0 {
		return
	}

	for i, seat := range state.Seats[:state.capacity()] {
		if seat == "" {
			state.Seats[i] = userID
			return
		}
	}
	for i, seat := range state.Seats[:state.capacity()] {
		if bot.IsBot(seat) {
			logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seat, userID, i)
			delete(state.Bots, seat)
			state.Seats[i] = userID
			return
		}
	}

	logger.Warn("MatchJoin: User %s joined but no seat was available, watching instead.", userID)
	state.Spectators[userID] = true
}

// MatchLeave is called when one or more players leave the match.
// Seats of a running game are kept so the player can reconnect.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)
		if !matchState.inLobby() {
			continue
		}
		delete(matchState.Spectators, userID)
		if i := matchState.seatOf(userID); i >= 0 {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", userID, i)
		}
	}

	if newOwner := findFirstHumanSeat(matchState.Seats[:]); newOwner != matchState.OwnerSeat && matchState.inLobby() {
		matchState.OwnerSeat = newOwner
		logger.Debug("MatchLeave: Owner set to seat %d.", newOwner)
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating match with no connected humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	if matchState.Env.BotsEnabled || len(matchState.Bots) > 0 {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

var commandByOpCode = map[int64]app.CommandKind{
	OpPlaceTile:      app.CommandPlaceTile,
	OpFoundChain:     app.CommandFoundChain,
	OpSelectSurvivor: app.CommandSelectSurvivor,
	OpDispose:        app.CommandDispose,
	OpBuyStock:       app.CommandBuyStock,
	OpEndTurn:        app.CommandEndTurn,
	OpEndGame:        app.CommandEndGame,
	OpPass:           app.CommandPass,
}

func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	if msg.GetOpCode() == OpStartGame {
		mh.handleStartGame(ctx, state, dispatcher, logger, senderID)
		return
	}

	kind, ok := commandByOpCode[msg.GetOpCode()]
	if !ok {
		logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		return
	}

	var cmd app.Command
	if data := msg.GetData(); len(data) > 0 {
		if err := json.Unmarshal(data, &cmd); err != nil {
			logger.Warn("MatchLoop: Invalid %s payload from %s: %v", kind, senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
			return
		}
	}
	cmd.Kind = kind

	mh.applyCommand(ctx, state, dispatcher, logger, senderID, cmd)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	senderSeat := state.seatOf(senderID)
	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if !state.inLobby() {
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, domain.ErrInvalidPhase.Error())
		return
	}
	if senderSeat < 0 || senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "only the match owner can start the game")
		return
	}

	// The owner leads the player list so the game records them as its owner.
	players := []string{senderID}
	for _, seat := range state.Seats {
		if seat != "" && seat != senderID {
			players = append(players, seat)
		}
	}
	var spectators []string
	for userID := range state.Spectators {
		spectators = append(spectators, userID)
	}

	game, events, err := state.App.StartGame(players, spectators)
	if err != nil {
		logger.Warn("StartGame: Cannot start with %d players: %v", len(players), err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}

	state.BotWaitUntil = 0
	mh.commit(ctx, state, dispatcher, logger, game, events)
	logger.Info("StartGame: Game %s started with %d players.", game.ID, len(players))
}

// applyCommand runs one player action against the game and publishes the outcome.
// A rejected action leaves the game untouched and is reported to the actor only.
func (mh *matchHandler) applyCommand(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, actorID string, cmd app.Command) {
	if state.Game == nil {
		logger.Warn("applyCommand: Game not started, %s from %s ignored.", cmd.Kind, actorID)
		mh.sendError(state, dispatcher, logger, actorID, errCodeBadRequest, domain.ErrInvalidPhase.Error())
		return
	}

	game, events, err := state.App.Apply(state.Game, actorID, cmd)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"game_id": state.Game.ID,
			"user_id": actorID,
			"command": cmd.Kind,
			"phase":   state.Game.Phase,
		}).Warn("applyCommand: rejected: %v", err)
		mh.sendError(state, dispatcher, logger, actorID, errCodeBadRequest, err.Error())
		return
	}

	mh.commit(ctx, state, dispatcher, logger, game, events)
}

// commit installs a new game state, publishes its events and snapshots,
// persists it and settles it once finished.
func (mh *matchHandler) commit(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, game *domain.Game, events []app.Event) {
	wasRunning := state.Game != nil && state.Game.Phase != domain.PhaseFinished && state.Game.ID == game.ID
	state.Game = game

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastMatchState(state, dispatcher, logger)

	if state.Store != nil {
		if err := state.Store.Save(ctx, game); err != nil {
			logger.Error("commit: Failed to persist game %s: %v", game.ID, err)
		}
	}

	if game.Phase == domain.PhaseFinished && wasRunning {
		mh.settle(ctx, state, logger)
	}
	if game.Phase == domain.PhaseFinished || !wasRunning {
		mh.updateLabel(state, dispatcher, logger)
	}
}

func (mh *matchHandler) settle(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Settlement == nil {
		return
	}
	result, err := state.Settlement.Settle(ctx, state.Game)
	if err != nil {
		logger.Error("settle: Game %s: %v", state.Game.ID, err)
		return
	}
	if result.Granted {
		logger.Info("settle: Game %s paid %d to %v", state.Game.ID, result.Amount, result.Winners)
	}
}

func (mh *matchHandler) ensureAgent(state *MatchState, botID string, index int) *bot.Agent {
	if agent, ok := state.Bots[botID]; ok {
		return agent
	}
	identity := bot.GetBotIdentity(index)
	if identity.UserID != botID {
		identity = bot.BotIdentity{UserID: botID, DisplayName: bot.GetBotDisplayName(botID)}
	}
	agent, err := bot.NewAgent(botID, identity.DisplayName, identity.Level())
	if err != nil {
		return nil
	}
	state.Bots[botID] = agent
	return agent
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		mh.autoFill(state, dispatcher, logger)
		return
	}

	pending := state.Game.PendingActor()
	if pending == nil || !bot.IsBot(pending.UserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		span := state.Env.BotMaxDelaySec - state.Env.BotMinDelaySec + 1
		delay := state.Env.BotMinDelaySec
		if span > 1 {
			delay += rand.Intn(span)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", pending.UserID, state.BotWaitUntil, state.Tick)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent := mh.ensureAgent(state, pending.UserID, pending.Order)
	if agent == nil {
		logger.Error("processBots: No agent for bot %s", pending.UserID)
		return
	}

	cmd, err := agent.Play(state.Game)
	if err != nil {
		if errors.Is(err, bot.ErrNoMove) {
			logger.Warn("processBots: Bot %s has no legal move in phase %s", pending.UserID, state.Game.Phase)
		} else {
			logger.Error("processBots: Bot %s failed to decide: %v", pending.UserID, err)
		}
		return
	}
	mh.applyCommand(ctx, state, dispatcher, logger, pending.UserID, cmd)
}

// autoFill seats bots beside a lone human once the fill delay has passed.
func (mh *matchHandler) autoFill(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.Env.BotsEnabled || state.GetHumanPlayerCount() != 1 {
		state.LastSinglePlayerTick = 0
		return
	}
	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		logger.Debug("processBots: Single player detected, starting auto-fill timer.")
	}
	if state.Tick-state.LastSinglePlayerTick < int64(state.Env.BotAutoFillDelaySec) {
		return
	}

	added := false
	for i, seat := range state.Seats[:state.capacity()] {
		if state.GetOccupiedSeatCount() >= botFillTarget {
			break
		}
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		if state.seatOf(identity.UserID) >= 0 {
			continue
		}
		state.Seats[i] = identity.UserID
		mh.ensureAgent(state, identity.UserID, i)
		logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	}
	state.LastSinglePlayerTick = 0
}

// broadcastMatchState sends the lobby seat map, or one game view per connected user.
func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		lobby := LobbyView{
			Seats:     state.Seats[:],
			OwnerSeat: state.OwnerSeat,
			Tick:      state.Tick,
		}
		for i, userID := range state.Seats {
			if userID == "" {
				continue
			}
			lobby.Players = append(lobby.Players, PlayerView{
				UserID:      userID,
				DisplayName: state.displayName(userID),
				Order:       i,
				IsBot:       bot.IsBot(userID),
			})
		}
		mh.send(dispatcher, logger, OpLobbyState, lobby, nil)
		return
	}

	for userID, presence := range state.Presences {
		view := buildGameView(state.App, state.Game, userID, state.displayName)
		mh.send(dispatcher, logger, OpGameState, view, []runtime.Presence{presence})
	}
}

// broadcastEvent dispatches one app event. Events with recipients go only to
// those of them that are connected.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// Private events for absent users (bots included) must not leak to everyone else.
		if len(recipients) == 0 {
			return
		}
	}
	logger.Debug("Event: %s (recipients=%d)", ev.Kind, len(ev.Recipients))
	mh.send(dispatcher, logger, OpGameEvent, ev, recipients)
}

// GameError is the payload of OpGameError.
type GameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError reports a rejected request to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Debug("Cannot send error to %s: Presence not found", userID)
		return
	}
	mh.send(dispatcher, logger, OpGameError, GameError{Code: code, Message: message}, []runtime.Presence{presence})
}

func (mh *matchHandler) send(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload interface{}, presences []runtime.Presence) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal message for opcode %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, presences, nil, true); err != nil {
		logger.Error("Failed to send opcode %d: %v", opCode, err)
	}
}

func (mh *matchHandler) labelPhase(state *MatchState) string {
	switch {
	case state.Game == nil:
		return phaseLobby
	case state.Game.Phase == domain.PhaseFinished:
		return phaseFinished
	default:
		return phasePlaying
	}
}

func (mh *matchHandler) labelOpen(state *MatchState) int {
	if state.Game != nil {
		return 0
	}
	return state.GetOpenSeatsCount()
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(mh.labelOpen(state), mh.labelPhase(state))
	if err != nil {
		logger.Error("UpdateLabel: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
