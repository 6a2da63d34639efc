package aura

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrRoleNotConfigured = errors.New("role not configured")
	ErrMutationFailed    = errors.New("role mutation failed")
)

// Member is a user's membership in one guild. RoleIDs is whatever snapshot
// the interaction carried; the engine reads the live set through the gateway.
type Member struct {
	GuildID string
	ID      string
	RoleIDs []string
}

// RoleGateway is the platform's view of guild membership. Implementations
// must be safe for concurrent use.
type RoleGateway interface {
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
	AddMemberRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error
}

type Outcome int

const (
	OutcomeAdded Outcome = iota + 1
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Message is the invoker-only confirmation for the outcome.
func (o Outcome) Message() string {
	if o == OutcomeRemoved {
		return "The video role has been removed."
	}
	return "You didn't have the video role, so it was added."
}

type ToggleEngine struct {
	gateway RoleGateway
}

func NewToggleEngine(gateway RoleGateway) *ToggleEngine {
	return &ToggleEngine{gateway: gateway}
}

// Toggle flips member's membership in roleID with exactly one mutation.
// The read and the write are not atomic; a concurrent edit between them is
// lost.
func (e *ToggleEngine) Toggle(ctx context.Context, member Member, roleID string) (Outcome, error) {
	if roleID == "" {
		return 0, ErrRoleNotConfigured
	}

	roles, err := e.gateway.MemberRoles(ctx, member.GuildID, member.ID)
	if err != nil {
		return 0, fmt.Errorf("read roles for %s: %w", member.ID, err)
	}

	if slices.Contains(roles, roleID) {
		if err := e.gateway.RemoveMemberRole(ctx, member.GuildID, member.ID, roleID); err != nil {
			return 0, fmt.Errorf("%w: remove %s from %s: %w", ErrMutationFailed, roleID, member.ID, err)
		}
		return OutcomeRemoved, nil
	}

	if err := e.gateway.AddMemberRole(ctx, member.GuildID, member.ID, roleID); err != nil {
		return 0, fmt.Errorf("%w: add %s to %s: %w", ErrMutationFailed, roleID, member.ID, err)
	}
	return OutcomeAdded, nil
}
