package aura

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	PingCommandName        = "ping"
	RemoveVideoCommandName = "remove-video"
)

const sideEffectTimeout = 5 * time.Second

const (
	msgPong          = "Pong!"
	msgDenied        = "You do not have permission to use this command."
	msgNotConfigured = "The video role is not configured. Ask an administrator to set it up."
	msgToggleFailed  = "Something went wrong while updating your roles. Please try again later."
	msgNoMember      = "This button can only be used in a server."
)

// Notifier posts an embed into a channel.
type Notifier interface {
	Notify(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error
}

type Handler struct {
	cfg      Config
	roster   *Roster
	engine   *ToggleEngine
	gateway  RoleGateway
	recorder Recorder
	notifier Notifier
	logger   *zap.Logger
	router   *Router
	now      func() time.Time
}

// NewHandler wires the command and component routes. recorder and notifier
// may be nil.
func NewHandler(cfg Config, gateway RoleGateway, recorder Recorder, notifier Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		cfg:      cfg,
		roster:   NewRoster(cfg.AdminIDs...),
		engine:   NewToggleEngine(gateway),
		gateway:  gateway,
		recorder: recorder,
		notifier: notifier,
		logger:   logger,
		router:   NewRouter(),
		now:      time.Now,
	}

	h.router.Command(PingCommandName, h.handlePing)
	h.router.Command(RemoveVideoCommandName, h.handleRemoveVideo)
	h.router.Component(ToggleVideoRoleID, h.handleToggleVideoRole)

	return h
}

// Handle dispatches in and reports whether any route matched.
func (h *Handler) Handle(ctx context.Context, in Interaction, reply Replier) bool {
	return h.router.Dispatch(ctx, in, reply)
}

func (h *Handler) handlePing(ctx context.Context, in Interaction, reply Replier) {
	h.send(ctx, in, reply, &discordgo.InteractionResponseData{Content: msgPong})
}

func (h *Handler) handleRemoveVideo(ctx context.Context, in Interaction, reply Replier) {
	if !h.roster.Authorize(in.InvokerID) {
		h.logger.Info("remove-video denied", zap.String("user_id", in.InvokerID))
		h.replyEphemeral(ctx, in, reply, toneDecline, msgDenied)
		return
	}

	h.send(ctx, in, reply, BuildPanel(h.now(), h.cfg.ThumbnailURL))
}

func (h *Handler) handleToggleVideoRole(ctx context.Context, in Interaction, reply Replier) {
	if in.Member == nil {
		h.replyEphemeral(ctx, in, reply, toneWarn, msgNoMember)
		return
	}

	member := *in.Member
	outcome, err := h.engine.Toggle(ctx, member, h.cfg.VideoRoleID)
	if err != nil {
		if errors.Is(err, ErrRoleNotConfigured) {
			h.logger.Warn("video role not configured", zap.String("user_id", member.ID))
			h.replyEphemeral(ctx, in, reply, toneWarn, msgNotConfigured)
			return
		}
		h.logger.Error("failed to toggle video role",
			zap.Error(err),
			zap.String("guild_id", member.GuildID),
			zap.String("user_id", member.ID),
		)
		h.replyEphemeral(ctx, in, reply, toneError, msgToggleFailed)
		return
	}

	h.logger.Info("video role toggled",
		zap.String("guild_id", member.GuildID),
		zap.String("user_id", member.ID),
		zap.Stringer("outcome", outcome),
	)
	h.replyEphemeral(ctx, in, reply, toneSuccess, outcome.Message())

	// The interaction deadline may already be spent by the gateway round-trip.
	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	h.record(sideCtx, member, outcome)
	h.notify(sideCtx, member, outcome)
}

// OnMemberJoin gives new members of the configured guild the default role.
func (h *Handler) OnMemberJoin(ctx context.Context, guildID, userID string) {
	if h.cfg.DefaultRoleID == "" || guildID != h.cfg.GuildID {
		return
	}

	if err := h.gateway.AddMemberRole(ctx, guildID, userID, h.cfg.DefaultRoleID); err != nil {
		h.logger.Error("failed to add default role",
			zap.Error(err),
			zap.String("guild_id", guildID),
			zap.String("user_id", userID),
		)
		return
	}
	h.logger.Info("default role added", zap.String("guild_id", guildID), zap.String("user_id", userID))
}

func (h *Handler) record(ctx context.Context, member Member, outcome Outcome) {
	if h.recorder == nil {
		return
	}
	err := h.recorder.Record(ctx, ToggleRecord{
		GuildID:   member.GuildID,
		UserID:    member.ID,
		RoleID:    h.cfg.VideoRoleID,
		Outcome:   outcome.String(),
		CreatedAt: h.now(),
	})
	if err != nil {
		h.logger.Warn("failed to record toggle", zap.Error(err))
	}
}

func (h *Handler) notify(ctx context.Context, member Member, outcome Outcome) {
	if h.notifier == nil || h.cfg.DefaultChannelID == "" {
		return
	}
	now := h.now()
	embed := buildEmbed(embedTemplate{
		Tone:        toneInfo,
		Title:       "Video role " + outcome.String(),
		Description: fmt.Sprintf("Video role %s for <@%s>.", outcome, member.ID),
		Timestamp:   &now,
	})
	if err := h.notifier.Notify(ctx, h.cfg.DefaultChannelID, embed); err != nil {
		h.logger.Warn("failed to send toggle notice", zap.Error(err), zap.String("channel_id", h.cfg.DefaultChannelID))
	}
}

func (h *Handler) replyEphemeral(ctx context.Context, in Interaction, reply Replier, tone embedTone, content string) {
	h.send(ctx, in, reply, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildEmbed(embedTemplate{Tone: tone, Description: content})},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

func (h *Handler) send(ctx context.Context, in Interaction, reply Replier, data *discordgo.InteractionResponseData) {
	if err := reply.Reply(ctx, data); err != nil {
		h.logger.Error("failed to respond to interaction",
			zap.Error(err),
			zap.Stringer("kind", in.Kind),
			zap.String("name", in.Name),
		)
	}
}

type sessionNotifier struct {
	session *discordgo.Session
}

func (n sessionNotifier) Notify(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := n.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	return err
}
