package savestate

// Key layout: player:{playerID}:{domain}
const keyFormat = "player:%s:%s"

const schemaSuffix = ".schema.json"

// Log messages
const (
	LogMsgCorruptSave = "Save data is corrupt, resetting to empty state"
	LogMsgInvalidSave = "Save data failed schema validation, resetting to empty state"
	LogMsgSaveWritten = "Save data written"
)
