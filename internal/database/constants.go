package database

// MinIdleConns is kept open so the first saves after a quiet period skip the
// connect handshake
const MinIdleConns = 2

const gooseDialect = "postgres"

// Error messages
const (
	ErrMsgParseConnString = "failed to parse connection string"
	ErrMsgCreatePool      = "failed to create connection pool"
	ErrMsgPingDatabase    = "failed to ping database"
	ErrMsgMigrate         = "failed to apply save-store migrations"
)

// Log messages
const (
	LogMsgConnected = "Connected to save database"
	LogMsgMigrated  = "Save-store schema is current"
)
