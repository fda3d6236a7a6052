package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sebuszqo/PaymentService/internal/finance/application"
)

var (
	ErrMissingJWTSecret        = errors.New("no JWT_SECRET provided")
	ErrMissingConnectionString = errors.New("missing DB_CONNECTION_STRING in environment variables")
	ErrMissingRedisAddr        = errors.New("missing REDIS_ADDR in environment variables")
)

type Config struct {
	Port                string
	Env                 string
	DataStoreType       string
	DBConnectionString  string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	HealthCheckSchedule string

	// EnvFileLoaded is false when no .env file was found and only the process environment was used.
	EnvFileLoaded bool
}

// Load reads an optional .env file and then the process environment.
// The returned value is the only place the data store type is read from.
func Load(envFiles ...string) (*Config, error) {
	envFileLoaded := godotenv.Load(envFiles...) == nil

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		DataStoreType:       getEnv("DATA_STORE_TYPE", ""),
		DBConnectionString:  getEnv("DB_CONNECTION_STRING", ""),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             redisDB,
		JWTSecret:           getEnv("JWT_SECRET", ""),
		HealthCheckSchedule: getEnv("HEALTH_CHECK_SCHEDULE", "@every 1m"),
		EnvFileLoaded:       envFileLoaded,
	}

	return cfg, cfg.Validate()
}

func (c *Config) UseBackupStore() bool {
	return c.DataStoreType == application.BackupDataStoreType
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate only requires connection settings for the store that will be used.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.UseBackupStore() {
		if c.RedisAddr == "" {
			return ErrMissingRedisAddr
		}
		return nil
	}
	if c.DBConnectionString == "" {
		return ErrMissingConnectionString
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
