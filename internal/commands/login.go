package commands

import (
	"context"
	"fmt"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	authDomain "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/domain"
	authService "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/i18n"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"
)

// loginCmd signs in and stores the issued credential
func loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in as administrator",
		Description: `Exchanges a username and password for a credential and stores it
for later add-feed calls. Missing values are prompted for; the password
is never echoed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Administrator username",
				EnvVars: []string{"BLOGFEED_USERNAME"},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Administrator password",
				EnvVars: []string{"BLOGFEED_PASSWORD"},
			},
		},
		Action: withInjector(func(ctx *cli.Context, injector do.Injector) error {
			cfg := do.MustInvoke[*config.Config](injector)
			auth := do.MustInvoke[*authService.Service](injector)

			creds, err := promptCredentials(ctx.String("username"), ctx.String("password"))
			if err != nil {
				return err
			}

			nav := authDomain.NavigatorFunc(func(_ context.Context, _ authDomain.Destination) {
				fmt.Fprintln(ctx.App.Writer, defaultTheme().Notice.Render(i18n.Text(i18n.KeySignedIn, cfg.Locale)))
			})

			if err := auth.Login(ctx.Context, creds, nav); err != nil {
				return fail(cfg, err)
			}
			return nil
		}),
	}
}

// promptCredentials asks only for the values not given as flags.
func promptCredentials(username, password string) (authDomain.Credentials, error) {
	var err error
	if username == "" {
		username, err = prompt.New().Ask("Username:").Input("admin")
		if err != nil {
			return authDomain.Credentials{}, err
		}
	}
	if password == "" {
		password, err = prompt.New().Ask("Password:").Input("", input.WithEchoMode(input.EchoNone))
		if err != nil {
			return authDomain.Credentials{}, err
		}
	}
	return authDomain.Credentials{Username: username, Password: password}, nil
}
