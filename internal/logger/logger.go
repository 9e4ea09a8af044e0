package logger

import (
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Init initializes the global logger based on environment.
// Development: text format with Debug level.
// Production: JSON format with Info level.
// Errors are additionally sent to Sentry when a DSN is configured.
func Init(isDev bool, sentryDSN string) {
	var level slog.Level
	var handlers []slog.Handler

	// Base handler for stdout (always enabled)
	if isDev {
		level = slog.LevelDebug
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	} else {
		level = slog.LevelInfo
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	}

	// Optional Sentry handler (errors only)
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}
