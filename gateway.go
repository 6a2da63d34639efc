package aura

import (
	"context"
	"errors"
	"slices"

	"github.com/bwmarrin/discordgo"
)

// sessionGateway reads roles from the session state cache and falls back to
// REST when the member is not cached.
type sessionGateway struct {
	session *discordgo.Session
}

func newSessionGateway(session *discordgo.Session) *sessionGateway {
	return &sessionGateway{session: session}
}

func (g *sessionGateway) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	if g.session.State != nil {
		member, err := g.session.State.Member(guildID, userID)
		if err == nil {
			// MemberAdd overwrites *member in place under the state lock.
			g.session.State.RLock()
			roles := slices.Clone(member.Roles)
			g.session.State.RUnlock()
			return roles, nil
		}
		if !errors.Is(err, discordgo.ErrStateNotFound) {
			return nil, err
		}
	}

	member, err := g.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return member.Roles, nil
}

func (g *sessionGateway) AddMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}

func (g *sessionGateway) RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	return g.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
}

// remember refreshes the state cache with the member snapshot an interaction
// carried, so the next read sees the roles Discord reported at click time.
func (g *sessionGateway) remember(member *discordgo.Member) {
	if g.session.State == nil || member == nil || member.User == nil {
		return
	}
	_ = g.session.State.MemberAdd(member)
}
