package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/auraflux/aura"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	var logger *zap.Logger

	app := &cli.App{
		Name:    "aura",
		Usage:   "Aura - Discord Bot Setup CLI",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "discord-token",
				EnvVars: []string{"DISCORD_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "app-id",
				EnvVars: []string{"CLIENT_ID", "APP_ID"},
			},
			&cli.StringFlag{
				Name:    "guild-id",
				EnvVars: []string{"GUILD_ID"},
			},
			&cli.StringFlag{
				Name:    "video-role-id",
				EnvVars: []string{"VIDEO_ROLE_ID"},
			},
			&cli.StringFlag{
				Name:    "default-role-id",
				EnvVars: []string{"DEFAULT_ROLE_ID"},
			},
			&cli.StringFlag{
				Name:    "default-channel-id",
				EnvVars: []string{"DEFAULT_CHANNEL_ID"},
			},
			&cli.StringSliceFlag{
				Name:    "admin-ids",
				Usage:   "user IDs allowed to use /remove-video",
				EnvVars: []string{"ADMIN_IDS"},
			},
			&cli.StringFlag{
				Name:    "thumbnail-url",
				EnvVars: []string{"PANEL_THUMBNAIL_URL"},
			},
			&cli.StringFlag{
				Name:    "database",
				Value:   aura.DefaultDatabasePath,
				EnvVars: []string{"AURA_DB"},
			},
			&cli.StringFlag{
				Name:    "health-addr",
				Value:   aura.DefaultHealthAddr,
				EnvVars: []string{"HEALTH_ADDR"},
			},
			&cli.StringFlag{
				Name:    "pid-file",
				Value:   aura.DefaultPIDFile,
				EnvVars: []string{"AURA_PID_FILE"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"AURA_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			if c.Bool("debug") {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "dev",
				Usage: "Ready, set, code your bot to life! Starts development mode.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "select mode: bot, linked, or activity",
						Value:   string(aura.ModeBot),
					},
				},
				Action: func(c *cli.Context) error {
					mode, err := aura.ParseMode(c.String("mode"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					logger.Info("development mode starting", zap.String("mode", string(mode)))
					return run(c, logger, mode)
				},
			},
			{
				Name:  "start",
				Usage: "Starts your bot in production mode.",
				Action: func(c *cli.Context) error {
					logger.Info("production mode starting")
					return run(c, logger, aura.ModeBot)
				},
			},
			{
				Name:  "deploy",
				Usage: "Registers the slash commands with Discord.",
				Action: func(c *cli.Context) error {
					return exitOnError(aura.Deploy(configFromContext(c), logger))
				},
			},
			{
				Name:  "invite",
				Usage: "Generates a link for servers to add your bot.",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "permissions",
						Value: aura.DefaultInvitePermissions,
					},
				},
				Action: func(c *cli.Context) error {
					appID := c.String("app-id")
					if appID == "" {
						return exitOnError(&aura.MissingConfigError{Keys: []string{"CLIENT_ID"}})
					}
					fmt.Println("Invite Link:", aura.InviteURL(appID, c.Int64("permissions")))
					return nil
				},
			},
			{
				Name:  "history",
				Usage: "Shows the most recent video role toggles.",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
					},
				},
				Action: func(c *cli.Context) error {
					audit, err := aura.OpenAuditLog(c.String("database"))
					if err != nil {
						return exitOnError(err)
					}
					defer audit.Close()

					records, err := audit.Recent(c.Context, c.Int("limit"))
					if err != nil {
						return exitOnError(err)
					}
					for _, rec := range records {
						fmt.Printf("%s  guild=%s user=%s role=%s %s\n",
							rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.GuildID, rec.UserID, rec.RoleID, rec.Outcome)
					}
					return nil
				},
			},
			{
				Name:  "stop",
				Usage: "Stops the bot if it is running. A pid file left by a crash is refused when its pid belongs to another program.",
				Action: func(c *cli.Context) error {
					pid, err := aura.Stop(c.String("pid-file"))
					if errors.Is(err, aura.ErrNotRunning) {
						fmt.Println("Bot is not running.")
						return nil
					}
					if errors.Is(err, aura.ErrStalePIDFile) {
						return cli.Exit(fmt.Sprintf("%v; remove %s if the bot is not running", err, c.String("pid-file")), 1)
					}
					if err != nil {
						return exitOnError(err)
					}
					fmt.Printf("Stopping bot (pid %d)...\n", pid)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context, logger *zap.Logger, mode aura.Mode) error {
	cfg := configFromContext(c)
	if err := cfg.Validate(mode); err != nil {
		return exitOnError(err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mode != aura.ModeLinked {
		removePID, err := aura.WritePIDFile(cfg.PIDFile)
		if err != nil {
			return exitOnError(err)
		}
		defer removePID()
	}

	return exitOnError(aura.Run(ctx, cfg, mode, logger))
}

func configFromContext(c *cli.Context) aura.Config {
	return aura.Config{
		Token:            c.String("discord-token"),
		AppID:            c.String("app-id"),
		GuildID:          c.String("guild-id"),
		VideoRoleID:      c.String("video-role-id"),
		DefaultRoleID:    c.String("default-role-id"),
		DefaultChannelID: c.String("default-channel-id"),
		AdminIDs:         c.StringSlice("admin-ids"),
		ThumbnailURL:     c.String("thumbnail-url"),
		DatabasePath:     c.String("database"),
		HealthAddr:       c.String("health-addr"),
		PIDFile:          c.String("pid-file"),
	}
}

func exitOnError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return cli.Exit(err.Error(), 1)
}
