package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	OwnerName   string
	OwnerEmail  string
	ContentPath string
	StaticPath  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver       string
	DBConnection   string
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Security
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminPasswordHash string

	// Contact workflow
	VerifyTokenExpiry time.Duration
	DuplicateWindow   time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible, used for article images; optional in development)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Portfolio"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envRequired("APP_URL"), // Required: base URL for verification links
		Port:        envString("PORT", "8090"),
		OwnerName:   envString("OWNER_NAME", "Ahmadullah Nekzad"),
		OwnerEmail:  envString("OWNER_EMAIL", "hello@example.com"),
		ContentPath: envString("CONTENT_PATH", "content"),
		StaticPath:  envString("STATIC_PATH", "static"),

		// Database
		DBDriver:       envString("DB_DRIVER", "sqlite"),
		DBConnection:   envString("DB_CONNECTION", "./data/portfolio.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),

		// Security
		JWTSecret:         envRequired("JWT_SECRET"),
		JWTExpiry:         envDuration("JWT_EXPIRY", 24*time.Hour),
		AdminPasswordHash: envString("ADMIN_PASSWORD_HASH", ""),

		// Contact workflow
		VerifyTokenExpiry: envDuration("VERIFY_TOKEN_EXPIRY", 24*time.Hour),
		DuplicateWindow:   envDuration("DUPLICATE_WINDOW", 5*time.Minute),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (optional: articles can be created without hero images)
		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production
// deployments. Development allows email to fall back to log-only delivery.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
	if cfg.AdminPasswordHash == "" {
		slog.Error("production deployment requires ADMIN_PASSWORD_HASH",
			"hint", "generate one with: htpasswd -bnBC 10 '' <password> | tr -d ':'")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded, so the copy is safe to put in a
// request context and hand to templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		OwnerName:  c.OwnerName,
		OwnerEmail: c.OwnerEmail,

		EmailFrom: c.EmailFrom,
	}
}
