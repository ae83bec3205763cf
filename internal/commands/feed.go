package commands

import (
	"fmt"

	adminDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/domain"
	adminService "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

// addFeedCmd registers a feed with the stored credential
func addFeedCmd() *cli.Command {
	return &cli.Command{
		Name:      "add-feed",
		Usage:     "Register a blog feed with the aggregator",
		ArgsUsage: "<url>",
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			admin := do.MustInvoke[*adminService.Service](injector)

			form := &adminDomain.Form{URL: ctx.Args().First()}
			if err := admin.Submit(ctx.Context, form); err != nil {
				return fail(cfg, err)
			}

			fmt.Fprintln(ctx.App.Writer, defaultTheme().Notice.Render(i18n.Text(i18n.KeyFeedAdded, cfg.Locale)))
			return nil
		}),
	}
}
