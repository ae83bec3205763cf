package commands

import (
	"errors"
	"io"
	"log/slog"

	"github.com/reshetovitsme/blog-feed-client/internal/di"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	apperrors "github.com/reshetovitsme/blog-feed-client/internal/shared/errors"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/logging"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

// App builds the blogfeed command line client.
func App() *cli.App {
	return &cli.App{
		Name:  "blogfeed",
		Usage: "Read and administer a blog feed aggregator",
		Description: `A client for the blog feed aggregation backend.

		Reads the public post index, signs in as administrator and
		registers new feeds. The serve command runs the web front end
		and, when a token is configured, the Telegram bot.

		Settings come from config.yaml, config.json or config.toml in the
		working directory and can be overridden by environment variables:

		BACKEND_URL=http://localhost:8080
		STORAGE_PATH=./data
		LOCALE=zh
		`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log backend requests to stderr",
				EnvVars: []string{"BLOGFEED_VERBOSE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level := slog.LevelWarn
			if ctx.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(logging.New(ctx.App.ErrWriter, io.Discard, level))
			return nil
		},
		Commands: []*cli.Command{
			postsCmd(),
			loginCmd(),
			addFeedCmd(),
			logoutCmd(),
			statusCmd(),
			serveCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

// withInjector builds the container for one command and tears it down
// afterwards.
func withInjector(action func(ctx *cli.Context, injector do.Injector) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		injector, err := di.Setup()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer di.Shutdown(injector)

		// Config errors surface here, before any command runs.
		if _, err := do.Invoke[*config.Config](injector); err != nil {
			return cli.Exit(err.Error(), exitCode(err))
		}
		return action(ctx, injector)
	}
}

// fail turns a flow error into a localized exit error.
func fail(cfg *config.Config, err error) error {
	return cli.Exit(i18n.Message(err, cfg.Locale), exitCode(err))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials),
		errors.Is(err, apperrors.ErrMissingURL),
		errors.Is(err, apperrors.ErrMissingBackendURL):
		return 2
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrCredentialRefused):
		return 3
	default:
		return 1
	}
}
