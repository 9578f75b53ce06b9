package nakama

import (
	"context"
	"database/sql"

	"acquire/internal/bot"
	"acquire/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

const botIdentitiesPath = "data/bot_identities.json"

// InitModule wires configuration, RPCs and the match handler into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	vars, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	env, err := config.ParseMatchEnv(vars)
	if err != nil {
		return err
	}

	if err := config.LoadRules(env.RulesPath); err != nil {
		logger.Warn("InitModule: Could not load rules from %s, using defaults: %v", env.RulesPath, err)
	}
	if err := bot.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameAcquire, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(), nil
	}); err != nil {
		return err
	}

	logger.Info("Acquire Go module loaded.")
	return nil
}
