package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const defaultSecretKey = "ultra-comprehensive-secret-key-2024"

// DBConfig holds database configuration
type DBConfig struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file
	URL      string // postgres DSN
	LogLevel logger.LogLevel
}

// SessionConfig holds cookie session settings
type SessionConfig struct {
	SecretKey   string
	ExpiryHours int
	Secure      bool
}

// SeedConfig holds the credentials of the default admin tenant
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

func (s SMTPConfig) Enabled() bool { return s.Host != "" && s.User != "" }

type TwilioConfig struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
}

func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.PhoneNumber != ""
}

// Config holds all configuration
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	DB                DBConfig
	Session           SessionConfig
	Seed              SeedConfig
	AnalyticsSchedule string
	CORSOrigins       []string
	SMTP              SMTPConfig
	Twilio            TwilioConfig
}

// Load reads .env (optional) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "hotelhub.db"),
			URL:      getEnv("DB_URL", ""),
			LogLevel: getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
		},
		Session: SessionConfig{
			SecretKey:   getEnv("SECRET_KEY", defaultSecretKey),
			ExpiryHours: getEnvAsInt("SESSION_EXPIRY_HOURS", 24),
			Secure:      getEnvAsBool("COOKIE_SECURE", false),
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@yourbookinghub.org"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		},
		AnalyticsSchedule: getEnv("ANALYTICS_SCHEDULE", "@daily"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
		},
		Twilio: TwilioConfig{
			AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
			PhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		},
	}

	return cfg
}

// UsesDefaultSecret reports whether sessions are signed with the built-in development key.
func (c *Config) UsesDefaultSecret() bool {
	return c.Session.SecretKey == defaultSecretKey
}

// LogFields returns the non-secret parts of the config for startup logging.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("environment", c.Env),
		zap.String("port", c.Port),
		zap.String("db_driver", c.DB.Driver),
		zap.String("db_path", c.DB.Path),
		zap.Bool("smtp_enabled", c.SMTP.Enabled()),
		zap.Bool("twilio_enabled", c.Twilio.Enabled()),
		zap.String("analytics_schedule", c.AnalyticsSchedule),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	switch getEnv(key, "") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
