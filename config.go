package aura

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigMissing is matched by every MissingConfigError.
var ErrConfigMissing = errors.New("required configuration missing")

type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfigMissing, strings.Join(e.Keys, ", "))
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrConfigMissing
}

// Config holds every process-start value. Identifiers are Discord snowflakes
// kept as strings, the way discordgo carries them.
type Config struct {
	Token            string
	AppID            string
	GuildID          string
	VideoRoleID      string
	DefaultRoleID    string
	DefaultChannelID string
	AdminIDs         []string
	ThumbnailURL     string

	DatabasePath string
	HealthAddr   string
	PIDFile      string
}

const (
	DefaultDatabasePath = "aura.db"
	DefaultHealthAddr   = ":8080"
	DefaultPIDFile      = "aura.pid"
)

// Validate reports every key the given mode cannot run without.
func (c Config) Validate(mode Mode) error {
	switch mode {
	case ModeBot, ModeActivity:
		return c.check("DISCORD_TOKEN", c.Token, "CLIENT_ID", c.AppID, "GUILD_ID", c.GuildID)
	case ModeLinked:
		return c.ValidateCredentials()
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// ValidateCredentials covers REST-only work: a bot token and the
// application it belongs to.
func (c Config) ValidateCredentials() error {
	return c.check("DISCORD_TOKEN", c.Token, "CLIENT_ID", c.AppID)
}

func (c Config) check(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return &MissingConfigError{Keys: missing}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath
	}
	if c.HealthAddr == "" {
		c.HealthAddr = DefaultHealthAddr
	}
	if c.PIDFile == "" {
		c.PIDFile = DefaultPIDFile
	}
	return c
}
