package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// ErrConfig is wrapped by every error returned from Load. It is always fatal.
var ErrConfig = errors.New("invalid configuration")

const (
	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollInterval      = 10 * time.Minute
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultLogFile           = "bot.log"
)

// Credentials are the three secrets the bot cannot run without.
type Credentials struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
}

// Validate reports every missing credential at once.
func (c Credentials) Validate() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", ErrConfig, strings.Join(missing, ", "))
	}
	return nil
}

// AppConfig holds all configuration for the application
type AppConfig struct {
	Credentials
	PracticumEndpoint string
	PollInterval      time.Duration
	HTTPTimeout       time.Duration
	LogLevel          string
	Environment       string
	LogFile           string // Empty disables file logging
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Credentials: Credentials{
			PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
			TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
			TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		},
	}
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}

	var err error
	cfg.PollInterval, err = durationFromEnv("POLL_INTERVAL", DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout, err = durationFromEnv("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	// An explicitly empty LOG_FILE turns file logging off.
	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = DefaultLogFile
	}
	cfg.LogFile = logFile

	return cfg, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %v", ErrConfig, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", ErrConfig, key, raw)
	}
	return d, nil
}
