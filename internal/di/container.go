package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	adminService "github.com/reshetovitsme/blog-feed-client/internal/modules/admin/service"
	authService "github.com/reshetovitsme/blog-feed-client/internal/modules/auth/service"
	sessionRepo "github.com/reshetovitsme/blog-feed-client/internal/modules/session/repository"
	sessionService "github.com/reshetovitsme/blog-feed-client/internal/modules/session/service"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/backend"
	"github.com/reshetovitsme/blog-feed-client/internal/shared/config"
	httpServer "github.com/reshetovitsme/blog-feed-client/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/blog-feed-client/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

const (
	shutdownTimeout = 10 * time.Second

	// Named value set by Run once the bot is polling.
	botStarted = "bot-started"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	Register(injector)
	return injector, nil
}

// Register provides everything except the config, which callers supply.
func Register(injector do.Injector) {
	// Register Session Repository
	do.Provide(injector, func(i do.Injector) (sessionRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.StoragePath == "" {
			return sessionRepo.NewMemoryStorage(), nil
		}
		repo, err := sessionRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize session repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Session Store
	do.Provide(injector, func(i do.Injector) (*sessionService.Store, error) {
		repo := do.MustInvoke[sessionRepo.Repository](i)
		store := sessionService.New(repo)
		store.SetLogger(slog.Default())
		return store, nil
	})

	// Register Backend Client
	do.Provide(injector, func(i do.Injector) (*backend.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		transport := backend.DefaultConfig()
		transport.Timeout = cfg.Timeout()
		client, err := backend.New(cfg.BackendURL,
			backend.WithHTTPClient(backend.NewHTTPClient(transport)),
			backend.WithLogger(slog.Default()),
		)
		if err != nil {
			return nil, oops.With("context", "failed to create backend client").Wrap(err)
		}
		return client, nil
	})

	// Register Auth Service
	do.Provide(injector, func(i do.Injector) (*authService.Service, error) {
		client := do.MustInvoke[*backend.Client](i)
		store := do.MustInvoke[*sessionService.Store](i)
		service := authService.New(client, store)
		service.SetLogger(slog.Default())
		return service, nil
	})

	// Register Admin Service
	do.Provide(injector, func(i do.Injector) (*adminService.Service, error) {
		client := do.MustInvoke[*backend.Client](i)
		store := do.MustInvoke[*sessionService.Store](i)
		service := adminService.New(client, store)
		service.SetLogger(slog.Default())
		return service, nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(cfg,
			do.MustInvoke[*backend.Client](i),
			do.MustInvoke[*authService.Service](i),
			do.MustInvoke[*adminService.Service](i),
			do.MustInvoke[*sessionService.Store](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return telegramHandler.New(cfg,
			do.MustInvoke[*backend.Client](i),
			do.MustInvoke[*authService.Service](i),
			do.MustInvoke[*adminService.Service](i),
			do.MustInvoke[*sessionService.Store](i),
		), nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
			bot.WithServerURL(cfg.TelegramAPIURL),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		handler.RegisterCommands(b)

		return b, nil
	})
}

// Run starts the web front end and, when a token is configured, the
// Telegram bot. It blocks until ctx is done or the web server fails.
func Run(ctx context.Context, injector do.Injector) error {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		return err
	}

	if cfg.BotEnabled() {
		b, err := do.Invoke[*bot.Bot](injector)
		if err != nil {
			return err
		}
		go b.Start(ctx)
		do.ProvideNamedValue(injector, botStarted, true)
		slog.Info("Telegram bot started")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "backend", cfg.BackendURL)

	select {
	case <-ctx.Done():
		slog.Info("Shutting down...")
	case err := <-serverErr:
		if err != nil {
			return oops.With("context", "http server stopped").Wrap(err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Only close the bot if Run started it. Closing ends the bot's session
	// on Telegram's side, which would cut off another process using it.
	if started, err := do.InvokeNamed[bool](injector, botStarted); err == nil && started {
		if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
			b.Close(ctx)
		}
	}

	return nil
}
