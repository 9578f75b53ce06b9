package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"acquire/internal/app"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// matchFinder is the part of runtime.NakamaModule quick match needs.
type matchFinder interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize *int, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

// ResumeMatchRequest names the persisted game to reopen.
type ResumeMatchRequest struct {
	GameID string `json:"game_id"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcResumeMatch, rpcResumeMatch)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return quickMatch(ctx, logger, nk)
}

func quickMatch(ctx context.Context, logger runtime.Logger, nk matchFinder) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := app.MaxSeats - 1

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, quickMatchQuery())
	if err != nil {
		logger.Error("quickMatch [User:%s]: MatchList error: %v", userID, err)
		return "", err
	}

	resp := QuickMatchResponse{}
	if len(matches) > 0 {
		resp.MatchID = matches[0].GetMatchId()
		logger.Info("quickMatch [User:%s]: Found existing match %s", userID, resp.MatchID)
	} else {
		// Seat and owner assignment happen in MatchJoin.
		matchID, err := nk.MatchCreate(ctx, MatchNameAcquire, map[string]interface{}{})
		if err != nil {
			logger.Error("quickMatch [User:%s]: MatchCreate error: %v", userID, err)
			return "", err
		}
		resp = QuickMatchResponse{MatchID: matchID, IsNew: true}
		logger.Info("quickMatch [User:%s]: Created new match %s", userID, matchID)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func rpcResumeMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return resumeMatch(ctx, logger, nk, payload)
}

// resumeMatch opens a new authoritative match restored from a game snapshot.
func resumeMatch(ctx context.Context, logger runtime.Logger, nk matchFinder, payload string) (string, error) {
	var req ResumeMatchRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.GameID == "" {
		return "", runtime.NewError("game_id is required", 3)
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameAcquire, map[string]interface{}{
		ParamResumeGameID: req.GameID,
	})
	if err != nil {
		logger.Error("resumeMatch: MatchCreate for game %s error: %v", req.GameID, err)
		return "", err
	}

	b, err := json.Marshal(QuickMatchResponse{MatchID: matchID, IsNew: true})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
