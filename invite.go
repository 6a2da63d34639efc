package aura

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultInvitePermissions grants Administrator.
const DefaultInvitePermissions int64 = 8

func InviteURL(clientID string, permissions int64) string {
	return fmt.Sprintf(
		"https://discord.com/api/oauth2/authorize?client_id=%s&permissions=%s&scope=bot%%20applications.commands",
		url.QueryEscape(clientID),
		strconv.FormatInt(permissions, 10),
	)
}
