package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          string
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin access for the seeding routes
	AdminSecretHash  string `mapstructure:"ADMIN_SECRET_HASH"`
	RequireAdminAuth bool   `mapstructure:"REQUIRE_ADMIN_AUTH"`
	SeedRateLimit    string `mapstructure:"SEED_RATE_LIMIT"`

	CORSAllowedOrigins []string
	DetectionMaxRows   int
	PosthogAPIKey      string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "currency-toolkit")
	v.SetDefault("ADMIN_SECRET_HASH", "")
	v.SetDefault("REQUIRE_ADMIN_AUTH", false)
	v.SetDefault("SEED_RATE_LIMIT", "10-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DETECTION_MAX_ROWS", 1000)
	v.SetDefault("POSTHOG_API_KEY", "")

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		slog.Warn("Invalid value for JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.Duration("default", jwtExpiryDuration))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "currency-toolkit"
	}

	cfg.AdminSecretHash = v.GetString("ADMIN_SECRET_HASH")
	cfg.RequireAdminAuth = v.GetBool("REQUIRE_ADMIN_AUTH")
	if cfg.RequireAdminAuth && cfg.AdminSecretHash == "" {
		slog.Warn("REQUIRE_ADMIN_AUTH is set but ADMIN_SECRET_HASH is empty. No admin token can be issued.")
	}

	cfg.SeedRateLimit = v.GetString("SEED_RATE_LIMIT")
	if cfg.SeedRateLimit == "" {
		cfg.SeedRateLimit = "10-M"
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.DetectionMaxRows = v.GetInt("DETECTION_MAX_ROWS")
	if cfg.DetectionMaxRows <= 0 {
		cfg.DetectionMaxRows = 1000
		slog.Warn("DETECTION_MAX_ROWS must be positive, using default", slog.Int("default", cfg.DetectionMaxRows))
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
