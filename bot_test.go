package aura

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func botTestConfig(t *testing.T) Config {
	return Config{
		Token:        "test-token",
		AppID:        "app",
		GuildID:      testGuild,
		DatabasePath: filepath.Join(t.TempDir(), "aura.db"),
	}
}

func TestNewBotLogsRosterSize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := botTestConfig(t)
	cfg.AdminIDs = []string{testAdmin, "other-admin", " "}

	bot, err := NewBot(cfg, ModeBot, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, bot.Close()) })

	entries := logs.FilterMessage("admin roster loaded").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["admins"])
}

func TestNewBotWarnsOnEmptyRoster(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	bot, err := NewBot(botTestConfig(t), ModeBot, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, bot.Close()) })

	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestNewBotRejectsMissingConfig(t *testing.T) {
	_, err := NewBot(Config{}, ModeBot, nil)
	assert.ErrorIs(t, err, ErrConfigMissing)
}
