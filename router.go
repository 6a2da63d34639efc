package aura

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type InteractionKind int

const (
	KindCommand InteractionKind = iota + 1
	KindComponent
)

func (k InteractionKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Interaction is the part of an inbound interaction the handlers look at.
// Name is the command name for KindCommand and the custom ID for
// KindComponent.
type Interaction struct {
	Kind      InteractionKind
	Name      string
	GuildID   string
	ChannelID string
	InvokerID string
	Member    *Member
}

// Replier sends the single reply an interaction is owed.
type Replier interface {
	Reply(ctx context.Context, data *discordgo.InteractionResponseData) error
}

type HandlerFunc func(ctx context.Context, in Interaction, reply Replier)

type routeKey struct {
	kind InteractionKind
	name string
}

type Router struct {
	routes map[routeKey]HandlerFunc
}

func NewRouter() *Router {
	return &Router{routes: make(map[routeKey]HandlerFunc)}
}

// Handle registers fn for an exact (kind, name) pair. The first registration
// wins; later ones report false.
func (r *Router) Handle(kind InteractionKind, name string, fn HandlerFunc) bool {
	key := routeKey{kind: kind, name: name}
	if _, ok := r.routes[key]; ok || fn == nil {
		return false
	}
	r.routes[key] = fn
	return true
}

func (r *Router) Command(name string, fn HandlerFunc) bool {
	return r.Handle(KindCommand, name, fn)
}

func (r *Router) Component(customID string, fn HandlerFunc) bool {
	return r.Handle(KindComponent, customID, fn)
}

// Dispatch runs the matching handler. It reports false, and does nothing,
// when no route matches.
func (r *Router) Dispatch(ctx context.Context, in Interaction, reply Replier) bool {
	fn, ok := r.routes[routeKey{kind: in.Kind, name: in.Name}]
	if !ok {
		return false
	}
	fn(ctx, in, reply)
	return true
}

// interactionFromEvent converts command and component interactions. Every
// other interaction type is reported as not convertible.
func interactionFromEvent(ic *discordgo.InteractionCreate) (Interaction, bool) {
	if ic == nil || ic.Interaction == nil {
		return Interaction{}, false
	}

	in := Interaction{
		GuildID:   ic.GuildID,
		ChannelID: ic.ChannelID,
	}

	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		data, ok := ic.Data.(discordgo.ApplicationCommandInteractionData)
		if !ok {
			return Interaction{}, false
		}
		in.Kind = KindCommand
		in.Name = data.Name
	case discordgo.InteractionMessageComponent:
		data, ok := ic.Data.(discordgo.MessageComponentInteractionData)
		if !ok {
			return Interaction{}, false
		}
		in.Kind = KindComponent
		in.Name = data.CustomID
	default:
		return Interaction{}, false
	}

	switch {
	case ic.Member != nil && ic.Member.User != nil:
		in.InvokerID = ic.Member.User.ID
		in.Member = &Member{
			GuildID: ic.GuildID,
			ID:      ic.Member.User.ID,
			RoleIDs: ic.Member.Roles,
		}
	case ic.User != nil:
		in.InvokerID = ic.User.ID
	}

	return in, true
}

type sessionReplier struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r sessionReplier) Reply(ctx context.Context, data *discordgo.InteractionResponseData) error {
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}
