package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MatchEnv is the per-match configuration read from the Nakama runtime environment.
type MatchEnv struct {
	BotsEnabled         bool   `env:"BOTS_ENABLED" envDefault:"false"`
	BotMinDelaySec      int    `env:"BOT_MIN_DELAY_SEC" envDefault:"1"`
	BotMaxDelaySec      int    `env:"BOT_MAX_DELAY_SEC" envDefault:"3"`
	BotAutoFillDelaySec int    `env:"BOT_AUTO_FILL_DELAY_SEC" envDefault:"5"`
	RulesPath           string `env:"RULES_PATH" envDefault:"data/acquire_rules.json"`
	SnapshotCollection  string `env:"SNAPSHOT_COLLECTION" envDefault:"acquire_snapshots"`
}

// EnvPrefix namespaces every match variable in the runtime environment.
const EnvPrefix = "ACQUIRE_"

// ParseMatchEnv reads MatchEnv from the given variables. A nil map yields the defaults.
func ParseMatchEnv(vars map[string]string) (MatchEnv, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	var cfg MatchEnv
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars, Prefix: EnvPrefix}); err != nil {
		return MatchEnv{}, fmt.Errorf("failed to parse match env: %w", err)
	}
	if cfg.BotMinDelaySec < 0 || cfg.BotMaxDelaySec < cfg.BotMinDelaySec {
		return MatchEnv{}, fmt.Errorf("invalid bot delay range %d..%d", cfg.BotMinDelaySec, cfg.BotMaxDelaySec)
	}
	return cfg, nil
}
