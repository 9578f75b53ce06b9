package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"acquire/internal/app"
	"acquire/internal/domain"
)

// RulesConfig holds the tunable rule parameters of a table.
type RulesConfig struct {
	StartingCash         int `json:"starting_cash"`
	HandSize             int `json:"hand_size"`
	MaxPurchasesPerTurn  int `json:"max_purchases_per_turn"`
	SafeChainSize        int `json:"safe_chain_size"`
	SharesPerCorporation int `json:"shares_per_corporation"`
	MinPlayers           int `json:"min_players"`
	MaxPlayers           int `json:"max_players"`
	// WinnerPrize is the wallet amount shared by the winners; 0 disables settlement.
	WinnerPrize int64 `json:"winner_prize"`
}

var (
	cfg      *RulesConfig
	loadOnce sync.Once
	loadErr  error
)

// DefaultRules returns the standard rules with no prize.
func DefaultRules() RulesConfig {
	s := domain.DefaultSettings()
	return RulesConfig{
		StartingCash:         s.StartingCash,
		HandSize:             s.HandSize,
		MaxPurchasesPerTurn:  s.MaxPurchasesPerTurn,
		SafeChainSize:        s.SafeChainSize,
		SharesPerCorporation: s.SharesPerCorporation,
		MinPlayers:           s.MinPlayers,
		MaxPlayers:           s.MaxPlayers,
	}
}

// LoadRules loads the rules configuration from the given path. Fields missing
// from the file keep their default values.
func LoadRules(path string) error {
	loadOnce.Do(func() {
		c, err := readRules(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

func readRules(path string) (*RulesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules config: %w", err)
	}

	c := DefaultRules()
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects configurations the engine cannot run with.
func (c RulesConfig) Validate() error {
	switch {
	case c.HandSize < 1:
		return fmt.Errorf("invalid rules config: hand_size must be positive")
	case c.MaxPurchasesPerTurn < 0:
		return fmt.Errorf("invalid rules config: max_purchases_per_turn must not be negative")
	case c.SafeChainSize < 2:
		return fmt.Errorf("invalid rules config: safe_chain_size must be at least 2")
	case c.SharesPerCorporation < 1:
		return fmt.Errorf("invalid rules config: shares_per_corporation must be positive")
	case c.MinPlayers < 2 || c.MaxPlayers < c.MinPlayers || c.MaxPlayers > app.MaxSeats:
		return fmt.Errorf("invalid rules config: player bounds %d..%d", c.MinPlayers, c.MaxPlayers)
	case c.WinnerPrize < 0:
		return fmt.Errorf("invalid rules config: winner_prize must not be negative")
	}
	return nil
}

// GetRules returns the loaded rules, or the defaults when nothing was loaded.
func GetRules() RulesConfig {
	if cfg == nil {
		return DefaultRules()
	}
	return *cfg
}

// Settings converts the rules into engine settings.
func (c RulesConfig) Settings() domain.Settings {
	return domain.Settings{
		StartingCash:         c.StartingCash,
		HandSize:             c.HandSize,
		MaxPurchasesPerTurn:  c.MaxPurchasesPerTurn,
		SafeChainSize:        c.SafeChainSize,
		SharesPerCorporation: c.SharesPerCorporation,
		MinPlayers:           c.MinPlayers,
		MaxPlayers:           c.MaxPlayers,
	}
}
