package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// BotIDPrefix marks user ids that belong to bots rather than Nakama accounts.
const BotIDPrefix = "bot-"

type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "good", "smart"
}

var (
	botIdentities []BotIdentity
	botConfigMap  map[string]BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path.
// Every identity's user id must carry BotIDPrefix.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var identities []BotIdentity
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		botConfigMap = make(map[string]BotIdentity, len(identities))
		for _, identity := range identities {
			if !strings.HasPrefix(identity.UserID, BotIDPrefix) {
				loadErr = fmt.Errorf("bot identity %q lacks the %q prefix", identity.UserID, BotIDPrefix)
				return
			}
			botConfigMap[identity.UserID] = identity
		}
		botIdentities = identities
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("%s%d", BotIDPrefix, index),
			Username:    fmt.Sprintf("bot%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index),
			Difficulty:  "good",
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// GetBotDisplayName returns the display name for a bot ID, or an empty string if not a bot.
func GetBotDisplayName(userID string) string {
	if identity, ok := botConfigMap[userID]; ok {
		return identity.DisplayName
	}
	if IsBot(userID) {
		return strings.Replace(userID, BotIDPrefix, "AI Player ", 1)
	}
	return ""
}

// Level maps an identity's difficulty to a brain level.
func (id BotIdentity) Level() BotLevel {
	if id.Difficulty == "smart" {
		return BotLevelSmart
	}
	return BotLevelGood
}

// IsBot reports whether the given user ID belongs to a bot.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, BotIDPrefix)
}
