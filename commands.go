package aura

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var dmPermission = false

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        PingCommandName,
		Description: "Replies with Pong!",
	},
	{
		Name:         RemoveVideoCommandName,
		Description:  "Remove the video role",
		DMPermission: &dmPermission,
	},
}

// Commands returns the slash commands the bot answers.
func Commands() []*discordgo.ApplicationCommand {
	return commands
}

// RegisterCommands overwrites the application's commands. An empty guildID
// registers them globally.
func RegisterCommands(s *discordgo.Session, appID, guildID string) ([]*discordgo.ApplicationCommand, error) {
	created, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	if err != nil {
		return nil, fmt.Errorf("could not register commands: %w", err)
	}
	return created, nil
}
