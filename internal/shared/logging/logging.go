package logging

import (
	"io"
	"log/slog"

	"github.com/reshetovitsme/blog-feed-client/internal/shared/domain"
	slogmulti "github.com/samber/slog-multi"
)

// New fans records out to a text handler on out (at level) and a JSON
// handler on errOut that only receives errors.
func New(out, errOut io.Writer, level slog.Level) *slog.Logger {
	textHandler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(slogmulti.Fanout(textHandler, jsonHandler))
}

// LevelFor picks the console level for an application environment.
func LevelFor(env domain.AppEnv) slog.Level {
	switch env {
	case domain.AppEnvLocal, domain.AppEnvDevelopment:
		return slog.LevelDebug
	case domain.AppEnvTesting:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
