package aura

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsEveryMissingKey(t *testing.T) {
	err := Config{}.Validate(ModeBot)
	require.ErrorIs(t, err, ErrConfigMissing)

	var missing *MissingConfigError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"DISCORD_TOKEN", "CLIENT_ID", "GUILD_ID"}, missing.Keys)
	assert.Contains(t, err.Error(), "GUILD_ID")
}

func TestValidateByMode(t *testing.T) {
	creds := Config{Token: "token", AppID: "1"}

	assert.NoError(t, creds.Validate(ModeLinked))
	assert.NoError(t, creds.ValidateCredentials())

	err := creds.Validate(ModeActivity)
	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"GUILD_ID"}, missing.Keys)

	creds.GuildID = testGuild
	assert.NoError(t, creds.Validate(ModeBot))

	assert.Error(t, creds.Validate(Mode("shell")))
	assert.NotErrorIs(t, creds.Validate(Mode("shell")), ErrConfigMissing)
}

func TestValidateTreatsBlankAsMissing(t *testing.T) {
	err := Config{Token: "  ", AppID: "1"}.ValidateCredentials()
	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"DISCORD_TOKEN"}, missing.Keys)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultHealthAddr, cfg.HealthAddr)
	assert.Equal(t, DefaultPIDFile, cfg.PIDFile)

	cfg = Config{DatabasePath: "x.db"}.withDefaults()
	assert.Equal(t, "x.db", cfg.DatabasePath)
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]Mode{
		"bot":       ModeBot,
		"linked":    ModeLinked,
		" Activity": ModeActivity,
	} {
		got, err := ParseMode(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("voice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choose 'bot', 'linked', or 'activity'")
}
