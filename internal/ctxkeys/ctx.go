package ctxkeys

import (
	"context"

	"github.com/anekzad/portfolio/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	ConfigKey contextKey = "config"
	AdminKey  contextKey = "admin"
	CSRFKey   contextKey = "csrf"
)

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(AdminKey).(bool)
	return admin
}

func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, AdminKey, true)
}

// CSRFToken returns the request's CSRF token, for embedding in pages.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFKey, token)
}
