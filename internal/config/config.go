package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Session      SessionConfig
	OAuth2Google OAuth2GoogleConfig
	Access       AccessConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	FrontendURL        string
	CORSAllowedOrigins []string
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// DatabaseConfig holds one connection string per store.
type DatabaseConfig struct {
	AccountURL        string
	SalesURL          string
	AttendanceURL     string
	MigrationsEnabled bool
}

// SessionConfig holds the session token settings
type SessionConfig struct {
	Secret     string
	Expiration string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// AccessConfig holds the static admin allow-list.
type AccessConfig struct {
	AdminEmails []string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	frontendURL := getEnv("FRONTEND_URL", "http://localhost:3000")
	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{frontendURL}
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FrontendURL:        frontendURL,
		CORSAllowedOrigins: origins,
	}

	// Database configuration
	migrationsEnabled, err := strconv.ParseBool(getEnv("MIGRATIONS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATIONS_ENABLED: %w", err)
	}

	config.Database = DatabaseConfig{
		AccountURL:        getEnv("ACCOUNT_DATABASE_URL", ""),
		SalesURL:          getEnv("SALES_DATABASE_URL", ""),
		AttendanceURL:     getEnv("ATTENDANCE_DATABASE_URL", ""),
		MigrationsEnabled: migrationsEnabled,
	}

	// Session configuration
	config.Session = SessionConfig{
		Secret:     getEnv("SESSION_SECRET", ""),
		Expiration: getEnv("SESSION_EXPIRATION", "24h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}
	if len(config.OAuth2Google.Scopes) == 0 {
		config.OAuth2Google.Scopes = []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		}
	}

	admins := getEnvSlice("ADMIN_EMAILS")
	for i := range admins {
		admins[i] = strings.ToLower(admins[i])
	}
	config.Access = AccessConfig{AdminEmails: admins}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.AccountURL == "" {
		return fmt.Errorf("ACCOUNT_DATABASE_URL is required")
	}
	if c.Database.SalesURL == "" {
		return fmt.Errorf("SALES_DATABASE_URL is required")
	}
	if c.Database.AttendanceURL == "" {
		return fmt.Errorf("ATTENDANCE_DATABASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if _, err := time.ParseDuration(c.Session.Expiration); err != nil {
		return fmt.Errorf("invalid SESSION_EXPIRATION: %w", err)
	}
	if c.OAuth2Google.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	if c.OAuth2Google.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}
	if c.OAuth2Google.RedirectURL == "" {
		return fmt.Errorf("REDIRECT_URL is required")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	result := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
