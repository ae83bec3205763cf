package commands

import (
	"fmt"
	"log/slog"

	postDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/post/domain"
	postService "github.com/reshetovitsme/blog-feed-client/internal/modules/post/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

// postsCmd prints the public post index
func postsCmd() *cli.Command {
	return &cli.Command{
		Name:  "posts",
		Usage: "List the aggregated posts",
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			client := do.MustInvoke[*backend.Client](injector)

			loader := postService.NewLoader(client)
			loader.SetLogger(slog.Default())
			view := loader.Load(ctx.Context)

			fmt.Fprintln(ctx.App.Writer, renderPosts(view, cfg.Locale))
			if view.State == postDomain.LoadStateFailed {
				return cli.Exit("", 1)
			}
			return nil
		}),
	}
}
