package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	APIKey         string // API key for authentication
	TrustedProxies []string
	// MaxRequestsPerWindow is the per-IP request budget of the rate limiter
	MaxRequestsPerWindow int

	// StoreDriver selects the save backend: memory, postgres or redis
	StoreDriver string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	RedisURL      string
	RedisPoolSize int

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	WorkerCount     int
	WorkerQueueSize int

	// Seed fixes the catalog sampler. Zero seeds from the clock.
	Seed uint64

	GameConfigPath string
	Game           GameConfig
}

// Load loads the configuration from environment variables and the game tuning file
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),

		APIKey:               getEnv(EnvAPIKey, ""),
		TrustedProxies:       splitList(getEnv(EnvTrustedProxies, "")),
		MaxRequestsPerWindow: getEnvAsInt(EnvMaxRequestsPerWindow, 0),

		StoreDriver: strings.ToLower(getEnv(EnvStoreDriver, StoreDriverMemory)),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		RedisURL:      getEnv(EnvRedisURL, DefaultRedisURL),
		RedisPoolSize: getEnvAsInt(EnvRedisPoolSize, DefaultRedisPoolSize),

		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, 0),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, 0),
		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, ""),

		WorkerCount:     getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),

		GameConfigPath: getEnv(EnvGameConfigPath, ConfigPathGame),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seedStr := getEnv(EnvSeed, ""); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED value: %w", err)
		}
		cfg.Seed = seed
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres, StoreDriverRedis:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	game, err := LoadGameConfig(cfg.GameConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Game = game

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to the default when the value is missing or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
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

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}
