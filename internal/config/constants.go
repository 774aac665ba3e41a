package config

import "time"

// Configuration file paths
const (
	ConfigPathGame = "configs/game.yaml"
)

// Environment variable names
const (
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvLogDir               = "LOG_DIR"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvEnvironment          = "ENVIRONMENT"
	EnvAPIKey               = "API_KEY"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvMaxRequestsPerWindow = "MAX_REQUESTS_PER_WINDOW"
	EnvStoreDriver          = "STORE_DRIVER"
	EnvDBUser               = "DB_USER"
	EnvDBPassword           = "DB_PASSWORD"
	EnvDBHost               = "DB_HOST"
	EnvDBPort               = "DB_PORT"
	EnvDBName               = "DB_NAME"
	EnvDBMaxConns           = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime    = "DB_MAX_CONN_LIFETIME"
	EnvRedisURL             = "REDIS_URL"
	EnvRedisPoolSize        = "REDIS_POOL_SIZE"
	EnvEventMaxRetries      = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay      = "EVENT_RETRY_DELAY"
	EnvEventDeadLetterPath  = "EVENT_DEADLETTER_PATH"
	EnvWorkerCount          = "WORKER_COUNT"
	EnvWorkerQueueSize      = "WORKER_QUEUE_SIZE"
	EnvSeed                 = "SEED"
	EnvGameConfigPath       = "GAME_CONFIG_PATH"
)

// Save store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "iconidle"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "iconidle"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRedisURL      = "redis://localhost:6379/0"
	DefaultRedisPoolSize = 10

	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 16
)

// Error messages
const (
	ErrMsgReadGameConfig    = "failed to read game config"
	ErrMsgParseGameConfig   = "failed to parse game config"
	ErrMsgInvalidGameConfig = "invalid game config"
)
