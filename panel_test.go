package aura

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPanel(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	data := BuildPanel(now, "https://cdn.example.com/video.png")

	require.Len(t, data.Embeds, 1)
	embed := data.Embeds[0]
	assert.Equal(t, PanelTitle, embed.Title)
	assert.Equal(t, PanelDescription, embed.Description)
	assert.Equal(t, colorSuccess, embed.Color)
	assert.Equal(t, "2026-10-18T09:30:00Z", embed.Timestamp)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/video.png", embed.Thumbnail.URL)

	require.Len(t, data.Components, 1)
	row := data.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 1)
	button := row.Components[0].(discordgo.Button)
	assert.Equal(t, PanelButtonLabel, button.Label)
	assert.Equal(t, ToggleVideoRoleID, button.CustomID)
	assert.Equal(t, discordgo.SuccessButton, button.Style)
	assert.Zero(t, data.Flags)
}

func TestBuildPanelOnlyTimestampVaries(t *testing.T) {
	a := BuildPanel(time.Unix(0, 0), "")
	b := BuildPanel(time.Unix(3600, 0), "")

	assert.Nil(t, a.Embeds[0].Thumbnail)
	assert.NotEqual(t, a.Embeds[0].Timestamp, b.Embeds[0].Timestamp)

	a.Embeds[0].Timestamp = ""
	b.Embeds[0].Timestamp = ""
	assert.Equal(t, a, b)
}

func TestBuildEmbedDefaults(t *testing.T) {
	embed := buildEmbed(embedTemplate{Tone: toneDecline, Description: "  nope  "})
	assert.Equal(t, "Declined", embed.Title)
	assert.Equal(t, "nope", embed.Description)
	assert.Equal(t, colorDecline, embed.Color)
	assert.Empty(t, embed.Timestamp)

	assert.Equal(t, colorInfo, embedColor("unknown"))
}
