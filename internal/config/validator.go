package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables every deployment must set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
}

// RequiredPostgresEnvVars are required when STORE_DRIVER=postgres
var RequiredPostgresEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// RequiredRedisEnvVars are required when STORE_DRIVER=redis
var RequiredRedisEnvVars = []string{
	EnvRedisURL,
}

// requiredFor returns the variables required for the selected store driver
func requiredFor(driver string) []string {
	required := append([]string{}, RequiredEnvVars...)
	switch strings.ToLower(driver) {
	case StoreDriverPostgres:
		required = append(required, RequiredPostgresEnvVars...)
	case StoreDriverRedis:
		required = append(required, RequiredRedisEnvVars...)
	}
	return required
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	// Check schema version first
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range requiredFor(os.Getenv(EnvStoreDriver)) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv(EnvStoreDriver) == "" || strings.EqualFold(os.Getenv(EnvStoreDriver), StoreDriverMemory) {
		warnings = append(warnings, "STORE_DRIVER is memory - player saves are lost on restart")
	}

	return warnings, nil
}
