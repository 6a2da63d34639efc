package aura

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

type embedTone string

const (
	toneInfo    embedTone = "info"
	toneSuccess embedTone = "success"
	toneDecline embedTone = "decline"
	toneError   embedTone = "error"
	toneWarn    embedTone = "warn"
)

const (
	colorInfo    = 0x3B82F6
	colorSuccess = 0x22C55E
	colorDecline = 0xDC2626
	colorError   = 0xEF4444
	colorWarn    = 0xF59E0B
)

type embedTemplate struct {
	Tone         embedTone
	Title        string
	Description  string
	ThumbnailURL string
	Timestamp    *time.Time
}

// embedColor defaults to info when tone is empty or unknown.
func embedColor(tone embedTone) int {
	switch tone {
	case toneSuccess:
		return colorSuccess
	case toneDecline:
		return colorDecline
	case toneError:
		return colorError
	case toneWarn:
		return colorWarn
	default:
		return colorInfo
	}
}

func defaultToneTitle(tone embedTone) string {
	switch tone {
	case toneSuccess:
		return "Success"
	case toneDecline:
		return "Declined"
	case toneError:
		return "Error"
	case toneWarn:
		return "Warning"
	default:
		return "Info"
	}
}

func buildEmbed(template embedTemplate) *discordgo.MessageEmbed {
	title := strings.TrimSpace(template.Title)
	if title == "" {
		title = defaultToneTitle(template.Tone)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.TrimSpace(template.Description),
		Color:       embedColor(template.Tone),
	}

	if url := strings.TrimSpace(template.ThumbnailURL); url != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}

	if template.Timestamp != nil {
		embed.Timestamp = template.Timestamp.UTC().Format(time.RFC3339)
	}

	return embed
}
