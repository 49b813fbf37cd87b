package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config is everything main needs to wire the server.
type Config struct {
	Port        string
	Environment string
	Domain      string

	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	RedisAddress  string
	RedisPassword string

	JWTSecret   string
	TokenTTL    time.Duration
	AdminEmails []string

	IssueDailyLimit       int
	FundRequestDailyLimit int

	AllowResubmissionAfterRejection bool
	RequireCommentOnReject          bool
}

// Production reports whether cookies must be secure and cross-site.
func (c Config) Production() bool {
	return c.Environment == "production"
}

// Development enables debug logging.
func (c Config) Development() bool {
	return c.Environment == "development"
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:          withDefault(getenv("PORT"), "8080"),
		Environment:   withDefault(getenv("GO_ENV"), "development"),
		Domain:        getenv("DOMAIN"),
		StoreBackend:  strings.ToLower(withDefault(getenv("STORE_BACKEND"), BackendMongo)),
		MongoURI:      getenv("MONGODB_URI"),
		MongoDatabase: withDefault(getenv("MONGODB_DATABASE"), "vital"),
		RedisAddress:  getenv("REDIS_ADDRESS"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET"),
		TokenTTL:      72 * time.Hour,
	}
	for _, email := range strings.Split(getenv("ADMIN_EMAILS"), ",") {
		if email = strings.TrimSpace(email); email != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, email)
		}
	}

	var err error
	if cfg.IssueDailyLimit, err = positiveInt(getenv, "ISSUE_DAILY_LIMIT", 5); err != nil {
		return Config{}, err
	}
	if cfg.FundRequestDailyLimit, err = positiveInt(getenv, "FUND_REQUEST_DAILY_LIMIT", 20); err != nil {
		return Config{}, err
	}
	if cfg.AllowResubmissionAfterRejection, err = boolean(getenv, "ALLOW_RESUBMISSION_AFTER_REJECTION"); err != nil {
		return Config{}, err
	}
	if cfg.RequireCommentOnReject, err = boolean(getenv, "REQUIRE_COMMENT_ON_REJECT"); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("please define the MONGODB_URI environment variable")
		}
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMongo, BackendMemory, cfg.StoreBackend)
	}
	return cfg, nil
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func boolean(getenv func(string) string, key string) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", key, raw)
	}
	return b, nil
}
