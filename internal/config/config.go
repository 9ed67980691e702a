package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Backend names accepted by FAVORITES_BACKEND.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port     string `env:"PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `env:"LOG_FILE"`

	FavoritesBackend string `env:"FAVORITES_BACKEND" env-default:"file"`
	FavoritesPath    string `env:"FAVORITES_PATH" env-default:"data/prefs"`
	SQLitePath       string `env:"SQLITE_PATH" env-default:"data/filmapp.db"`

	Redis    RedisConfig
	Database DatabaseConfig

	PaymentDelay time.Duration `env:"PAYMENT_DELAY" env-default:"1500ms"`
	SearchRate   float64       `env:"SEARCH_RATE" env-default:"20"`
	SearchBurst  int           `env:"SEARCH_BURST" env-default:"40"`
}

type RedisConfig struct {
	Host     string `env:"R_HOST" env-default:"redis"`
	Port     string `env:"R_PORT" env-default:"6379"`
	Password string `env:"R_PASS"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
}

// DSN returns the pgx connection string, or an error when a required field is empty.
func (d DatabaseConfig) DSN() (string, error) {
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.Name == "" {
		return "", fmt.Errorf("missing required database configuration")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name), nil
}

// Load reads envFile (if present) into the process environment and then populates
// a Config from the environment. A missing env file is not an error; loaded reports
// whether it was found.
func Load(envFile string) (cfg *Config, loaded bool, err error) {
	loaded = godotenv.Load(envFile) == nil

	cfg = &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, loaded, fmt.Errorf("failed to read environment: %w", err)
	}

	switch cfg.FavoritesBackend {
	case BackendFile, BackendRedis, BackendPostgres, BackendSQLite:
	default:
		return nil, loaded, fmt.Errorf("unknown favorites backend %q", cfg.FavoritesBackend)
	}

	return cfg, loaded, nil
}

// GetEnv retrieves values from environment files based on the key it matches,
// returns a string (value) if not empty
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
