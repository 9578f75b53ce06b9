package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// RpcResumeMatch reopens a persisted game in a fresh match.
	RpcResumeMatch = "resume_match"

	// MatchNameAcquire is the authoritative match handler name registered with Nakama.
	MatchNameAcquire = "acquire_match"
)

// Op codes for client messages and server events. Payloads are JSON.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpPlaceTile      int64 = 2 // {"tile":"5E"}
	OpFoundChain     int64 = 3 // {"corporation":"Tower"}
	OpSelectSurvivor int64 = 4 // {"corporation":"Tower"}
	OpDispose        int64 = 5 // {"action":"sell"|"trade"|"keep"}
	OpBuyStock       int64 = 6 // {"corporation":"Tower"}
	OpEndTurn        int64 = 7
	OpEndGame        int64 = 8
	OpPass           int64 = 9 // no playable tile in hand

	// Server -> Client events
	OpLobbyState int64 = 100
	OpGameState  int64 = 101 // per recipient; only the recipient's hand is included
	OpGameEvent  int64 = 102
	OpGameError  int64 = 103 // send privately
)
