package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TG_TOKEN", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Bot.PollTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "X", cfg.Game.HumanMark)
	assert.Equal(t, "O", cfg.Game.OpponentMark)
	assert.Equal(t, ".", cfg.Game.EmptyMark)
	assert.Error(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("TG_TOKEN", "")

	dir := t.TempDir()
	yaml := `
bot:
  token: file-token
  poll_timeout: 30s
whitelist:
  chats: [-100, 42]
log:
  level: debug
game:
  human_mark: "❌"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Bot.Token)
	assert.Equal(t, 30*time.Second, cfg.Bot.PollTimeout)
	assert.Equal(t, []int64{-100, 42}, cfg.Whitelist.Chats)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "❌", cfg.Game.HumanMark)
	assert.Equal(t, "O", cfg.Game.OpponentMark)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Run("BOT_TOKEN", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "env-token")
		t.Setenv("TG_TOKEN", "")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.Bot.Token)
	})

	t.Run("legacy TG_TOKEN", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("TG_TOKEN", "legacy-token")
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "legacy-token", cfg.Bot.Token)
	})
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			assert.Equal(t, tt.expected, cfg.LogLevel())
		})
	}
}

// TestWhitelistEnforcementProperty checks that a chat is allowed iff it is
// listed, and that an empty whitelist allows every chat.
func TestWhitelistEnforcementProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chats := rapid.SliceOfN(rapid.Int64Range(-1000000, 1000000), 0, 10).Draw(t, "chats")
		chatID := rapid.Int64Range(-1000000, 1000000).Draw(t, "chatID")

		cfg := &Config{Whitelist: WhitelistConfig{Chats: chats}}

		expected := len(chats) == 0
		for _, id := range chats {
			if id == chatID {
				expected = true
			}
		}

		if got := cfg.IsChatAllowed(chatID); got != expected {
			t.Fatalf("IsChatAllowed(%d) with %v = %v, want %v", chatID, chats, got, expected)
		}
	})
}
