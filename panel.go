package aura

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	ToggleVideoRoleID = "toggle_video_role"

	PanelTitle       = "Toggle Video Role"
	PanelDescription = "Click the button below to add or remove the video role. The change is only visible to you."
	PanelButtonLabel = "Toggle Video Role"
)

// BuildPanel renders the broadcast reply to /remove-video. Only the footer
// timestamp differs between two calls.
func BuildPanel(now time.Time, thumbnailURL string) *discordgo.InteractionResponseData {
	embed := buildEmbed(embedTemplate{
		Tone:         toneSuccess,
		Title:        PanelTitle,
		Description:  PanelDescription,
		ThumbnailURL: thumbnailURL,
		Timestamp:    &now,
	})

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    PanelButtonLabel,
						Style:    discordgo.SuccessButton,
						CustomID: ToggleVideoRoleID,
					},
				},
			},
		},
	}
}
