package aura

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGatewayReadsRememberedMember(t *testing.T) {
	dg, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	require.NoError(t, dg.State.GuildAdd(&discordgo.Guild{ID: testGuild}))

	gw := newSessionGateway(dg)
	gw.remember(&discordgo.Member{
		GuildID: testGuild,
		User:    &discordgo.User{ID: testUser},
		Roles:   []string{testRole},
	})

	roles, err := gw.MemberRoles(context.Background(), testGuild, testUser)
	require.NoError(t, err)
	assert.Equal(t, []string{testRole}, roles)

	gw.remember(&discordgo.Member{
		GuildID: testGuild,
		User:    &discordgo.User{ID: testUser},
		Roles:   []string{},
	})
	roles, err = gw.MemberRoles(context.Background(), testGuild, testUser)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestSessionGatewayRememberIgnoresIncompleteMembers(t *testing.T) {
	dg, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	gw := newSessionGateway(dg)

	assert.NotPanics(t, func() {
		gw.remember(nil)
		gw.remember(&discordgo.Member{GuildID: testGuild})
		gw.remember(&discordgo.Member{GuildID: "unknown", User: &discordgo.User{ID: testUser}})
	})
}

func TestSessionGatewayConcurrentRememberAndRead(t *testing.T) {
	dg, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	require.NoError(t, dg.State.GuildAdd(&discordgo.Guild{ID: testGuild}))

	gw := newSessionGateway(dg)
	gw.remember(&discordgo.Member{GuildID: testGuild, User: &discordgo.User{ID: testUser}, Roles: []string{testRole}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			gw.remember(&discordgo.Member{GuildID: testGuild, User: &discordgo.User{ID: testUser}, Roles: []string{testRole}})
		}()
		go func() {
			defer wg.Done()
			roles, err := gw.MemberRoles(context.Background(), testGuild, testUser)
			assert.NoError(t, err)
			assert.Equal(t, []string{testRole}, roles)
		}()
	}
	wg.Wait()
}

func TestSessionGatewayReturnsCopyOfCachedRoles(t *testing.T) {
	dg, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	require.NoError(t, dg.State.GuildAdd(&discordgo.Guild{ID: testGuild}))

	gw := newSessionGateway(dg)
	gw.remember(&discordgo.Member{GuildID: testGuild, User: &discordgo.User{ID: testUser}, Roles: []string{testRole}})

	roles, err := gw.MemberRoles(context.Background(), testGuild, testUser)
	require.NoError(t, err)
	roles[0] = "tampered"

	cached, err := dg.State.Member(testGuild, testUser)
	require.NoError(t, err)
	assert.Equal(t, []string{testRole}, cached.Roles)
}
