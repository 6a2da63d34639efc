package aura

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// LinkedRoleMetadata is the role connection metadata published in linked
// mode. Guild admins build linked-role requirements from these keys.
var LinkedRoleMetadata = []*discordgo.ApplicationRoleConnectionMetadata{
	{
		Type:        discordgo.ApplicationRoleConnectionMetadataBooleanEqual,
		Key:         "video_enabled",
		Name:        "Video enabled",
		Description: "Member has opted into the video role",
	},
	{
		Type:        discordgo.ApplicationRoleConnectionMetadataIntegerGreaterThanOrEqual,
		Key:         "video_toggles",
		Name:        "Video toggles",
		Description: "Number of times the member toggled the video role",
	},
}

// PublishLinkedRoleMetadata replaces the application's metadata records.
func PublishLinkedRoleMetadata(s *discordgo.Session, appID string) ([]*discordgo.ApplicationRoleConnectionMetadata, error) {
	records, err := s.ApplicationRoleConnectionMetadataUpdate(appID, LinkedRoleMetadata)
	if err != nil {
		return nil, fmt.Errorf("publish role connection metadata: %w", err)
	}
	return records, nil
}
