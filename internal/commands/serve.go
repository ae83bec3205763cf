package commands

import (
	"log/slog"
	"os"

	"github.com/reshetovitsme/blog-feed-client/internal/di"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/logging"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

// serveCmd runs the web front end and the Telegram bot
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the web front end and the Telegram bot",
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			// Long running, so log like the server binary.
			cfg := do.MustInvoke[*config.Config](injector)
			slog.SetDefault(logging.New(os.Stdout, os.Stderr, logging.LevelFor(cfg.AppEnv)))
			if err := di.Run(ctx.Context, injector); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		}),
	}
}
