package aura

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInviteURL(t *testing.T) {
	assert.Equal(t,
		"https://discord.com/api/oauth2/authorize?client_id=123456&permissions=8&scope=bot%20applications.commands",
		InviteURL("123456", DefaultInvitePermissions),
	)
	assert.Equal(t,
		"https://discord.com/api/oauth2/authorize?client_id=1&permissions=66560&scope=bot%20applications.commands",
		InviteURL("1", 66560),
	)
}
