package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata" // zoneinfo for RESTAURANT_TIMEZONE

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	minSecretLen = 32
)

// ErrWeakSecret is returned outside dev when SESSION_SECRET is missing or short.
var ErrWeakSecret = errors.New("config: SESSION_SECRET must be at least 32 bytes")

// Config holds all configuration for the application.
type Config struct {
	Addr                string        `mapstructure:"APP_ADDR" validate:"required"`
	BaseURL             string        `mapstructure:"APP_BASE_URL" validate:"omitempty,url"`
	Env                 string        `mapstructure:"APP_ENV" validate:"oneof=dev prod"`
	SessionSecret       string        `mapstructure:"SESSION_SECRET"`
	Timezone            string        `mapstructure:"RESTAURANT_TIMEZONE" validate:"required"`
	ContentDir          string        `mapstructure:"CONTENT_DIR"`
	LogFormat           string        `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`
	LogLevel            string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ResetDelay          time.Duration `mapstructure:"RESERVATION_RESET_DELAY" validate:"gt=0"`
	IdleTTL             time.Duration `mapstructure:"RESERVATION_IDLE_TTL" validate:"gt=0"`
	TestimonialInterval time.Duration `mapstructure:"TESTIMONIAL_INTERVAL" validate:"gt=0"`
	RateLimitPerMinute  int           `mapstructure:"RATE_LIMIT_PER_MINUTE" validate:"gte=0"`

	// Location is resolved from Timezone.
	Location *time.Location `mapstructure:"-"`
}

var defaults = map[string]any{
	"APP_ADDR":                ":8080",
	"APP_BASE_URL":            "",
	"APP_ENV":                 EnvDev,
	"SESSION_SECRET":          "",
	"RESTAURANT_TIMEZONE":     "America/New_York",
	"CONTENT_DIR":             "",
	"LOG_FORMAT":              "text",
	"LOG_LEVEL":               "info",
	"RESERVATION_RESET_DELAY": "500ms",
	"RESERVATION_IDLE_TTL":    "30m",
	"TESTIMONIAL_INTERVAL":    "5s",
	"RATE_LIMIT_PER_MINUTE":   60,
}

// New loads configuration and exits the process if it is unusable.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// Load reads .env, then an optional YAML file named by CONFIG_FILE, then the
// environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: RESTAURANT_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if len(cfg.SessionSecret) < minSecretLen {
		if !cfg.IsDev() {
			return nil, ErrWeakSecret
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		slog.Warn("SESSION_SECRET not set, using a random secret; sessions will not survive restarts")
		cfg.SessionSecret = secret
	}
	return &cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

func randomSecret() (string, error) {
	b := make([]byte, minSecretLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("config: generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
