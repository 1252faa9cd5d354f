package config

import (
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultDataDir        = "data"
	defaultTimezone       = "Asia/Kolkata"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry      = 24 * time.Hour
	defaultJWTIssuer      = "bookkeeping-app"
	defaultAdminUsername  = "admin"
	defaultAdminPassword  = "admin123"
	defaultLoginRateLimit = "10-M"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DataDir      string
	IsProduction bool

	// Timezone names the zone that defines "today" and month boundaries.
	Timezone string
	Location *time.Location

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	RequireAuth       bool

	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string
	// LoginRateLimit uses the limiter format "<limit>-<period>", e.g. "10-M".
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("DATA_DIR", defaultDataDir)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("TIMEZONE", defaultTimezone)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("REQUIRE_AUTH", false)
	v.SetDefault("ADMIN_USERNAME", defaultAdminUsername)
	v.SetDefault("ADMIN_PASSWORD", defaultAdminPassword)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_LIMIT", defaultLoginRateLimit)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		DataDir:        v.GetString("DATA_DIR"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		Timezone:       v.GetString("TIMEZONE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RequireAuth:    v.GetBool("REQUIRE_AUTH"),
		AdminUsername:  v.GetString("ADMIN_USERNAME"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		slog.Warn("Invalid TIMEZONE, using default", slog.String("value", cfg.Timezone), slog.String("default", defaultTimezone))
		cfg.Timezone = defaultTimezone
		loc, err = time.LoadLocation(defaultTimezone)
		if err != nil {
			loc = time.UTC
			cfg.Timezone = "UTC"
		}
	}
	cfg.Location = loc

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "24h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration, err = time.ParseDuration(jwtExpiryStr)
	if err != nil || cfg.JWTExpiryDuration <= 0 {
		cfg.JWTExpiryDuration = defaultJWTExpiry
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default", slog.String("value", jwtExpiryStr), slog.String("default", defaultJWTExpiry.String()))
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = defaultAdminUsername
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
