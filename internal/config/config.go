package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"

	ProviderGemini = "gemini"
	ProviderCanned = "canned"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"movewell.db"`

	DB    DBConfig
	Redis RedisConfig

	CacheEnabled    bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"30m"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	JWT JWTConfig
	LLM LLMConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"movewell_user"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"movewell_db"`
}

// DSN renders the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a Redis host was configured at all.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"movewell-api"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"72h"`
}

type LLMConfig struct {
	Provider string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	APIKey   string        `env:"GEMINI_API_KEY"`
	Model    string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	BaseURL  string        `env:"GEMINI_BASE_URL"`
	Timeout  time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] No .env file loaded: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	case BackendRedis:
		if !c.Redis.Enabled() {
			return fmt.Errorf("config: STORAGE_BACKEND=redis requires REDIS_HOST")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.LLM.Provider {
	case ProviderGemini, ProviderCanned:
	default:
		return fmt.Errorf("config: unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
