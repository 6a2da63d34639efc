package aura

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// Discord drops an interaction that is not answered within three seconds.
	interactionDeadline = 3 * time.Second
	eventTimeout        = 10 * time.Second
	shutdownTimeout     = 5 * time.Second

	ActivityName = "with code!"
)

type Bot struct {
	cfg     Config
	mode    Mode
	audit   *AuditLog
	session *discordgo.Session
	gateway *sessionGateway
	handler *Handler
	logger  *zap.Logger
}

func NewBot(cfg Config, mode Mode, logger *zap.Logger) (*Bot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	audit, err := OpenAuditLog(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		_ = audit.Close()
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	gateway := newSessionGateway(dg)
	b := &Bot{
		cfg:     cfg,
		mode:    mode,
		audit:   audit,
		session: dg,
		gateway: gateway,
		handler: NewHandler(cfg, gateway, audit, sessionNotifier{session: dg}, logger),
		logger:  logger,
	}

	if admins := b.handler.roster.Len(); admins == 0 {
		logger.Warn("no admin IDs configured, /remove-video will deny everyone")
	} else {
		logger.Info("admin roster loaded", zap.Int("admins", admins))
	}

	dg.AddHandler(b.ready)
	dg.AddHandler(b.interactionCreate)
	dg.AddHandler(b.guildMemberAdd)

	dg.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentGuildMembers

	return b, nil
}

// Open registers the slash commands for the configured guild and connects to
// the gateway.
func (b *Bot) Open() error {
	created, err := RegisterCommands(b.session, b.cfg.AppID, b.cfg.GuildID)
	if err != nil {
		return err
	}
	b.logger.Info("commands registered", zap.Int("count", len(created)), zap.String("guild_id", b.cfg.GuildID))

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway connection: %w", err)
	}
	return nil
}

// Run serves the health endpoint and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	health := StartHealthServer(b.cfg.HealthAddr, b.logger)

	b.logger.Info("bot is now running", zap.String("mode", string(b.mode)))
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := health.Shutdown(shutdownCtx); err != nil {
		b.logger.Warn("health endpoint shutdown failed", zap.Error(err))
	}

	return b.Close()
}

func (b *Bot) Close() error {
	sessionErr := b.session.Close()
	auditErr := b.audit.Close()
	if sessionErr != nil {
		return fmt.Errorf("close gateway connection: %w", sessionErr)
	}
	return auditErr
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", zap.String("user", r.User.String()))

	if b.mode != ModeActivity {
		return
	}
	if err := s.UpdateGameStatus(0, ActivityName); err != nil {
		b.logger.Error("failed to set activity", zap.Error(err))
		return
	}
	b.logger.Info("activity set", zap.String("activity", "Playing "+ActivityName))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	in, ok := interactionFromEvent(i)
	if !ok {
		return
	}

	if in.Kind == KindComponent && i.Member != nil {
		member := *i.Member
		member.GuildID = i.GuildID
		b.gateway.remember(&member)
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionDeadline)
	defer cancel()

	b.handler.Handle(ctx, in, sessionReplier{session: s, interaction: i.Interaction})
}

func (b *Bot) guildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil || m.User.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	b.handler.OnMemberJoin(ctx, m.GuildID, m.User.ID)
}

// Run starts the given mode and blocks until ctx is done. Linked mode only
// publishes metadata and returns.
func Run(ctx context.Context, cfg Config, mode Mode, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if mode == ModeLinked {
		return runLinked(cfg, logger)
	}

	bot, err := NewBot(cfg, mode, logger)
	if err != nil {
		return err
	}
	if err := bot.Open(); err != nil {
		_ = bot.Close()
		return err
	}
	return bot.Run(ctx)
}

func runLinked(cfg Config, logger *zap.Logger) error {
	if err := cfg.ValidateCredentials(); err != nil {
		return err
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	records, err := PublishLinkedRoleMetadata(dg, cfg.AppID)
	if err != nil {
		return err
	}
	logger.Info("linked role setup complete", zap.Int("records", len(records)))
	return nil
}

// Deploy registers the slash commands without connecting to the gateway.
func Deploy(cfg Config, logger *zap.Logger) error {
	if err := cfg.ValidateCredentials(); err != nil {
		return err
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	created, err := RegisterCommands(dg, cfg.AppID, cfg.GuildID)
	if err != nil {
		return err
	}
	logger.Info("commands deployed", zap.Int("count", len(created)), zap.String("guild_id", cfg.GuildID))
	return nil
}
