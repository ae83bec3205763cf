package commands

import (
	"fmt"

	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the stored credential",
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			store := do.MustInvoke[*sessionService.Store](injector)

			if err := store.Clear(); err != nil {
				return fail(cfg, err)
			}
			fmt.Fprintln(ctx.App.Writer, i18n.Text(i18n.KeySignedOut, cfg.Locale))
			return nil
		}),
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the backend and sign-in state",
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			store := do.MustInvoke[*sessionService.Store](injector)

			fmt.Fprintf(ctx.App.Writer, "Backend:   %s\n", cfg.BackendURL)
			if session, ok := store.Current(); ok {
				fmt.Fprintf(ctx.App.Writer, "Signed in: yes (since %s)\n", session.SavedAt.Format("2006-01-02 15:04"))
			} else {
				fmt.Fprintln(ctx.App.Writer, "Signed in: no")
			}
			return nil
		}),
	}
}
