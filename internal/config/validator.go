package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version the application expects.
// Bump this when a new required variable is added so stale env files fail fast.
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables that must be set.
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// ValidateEnv checks the schema version and that every required variable is set.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings performs the critical validation and additionally
// returns warnings for values that work but should not reach production.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	switch apiKey := os.Getenv("API_KEY"); {
	case apiKey == "generate_with_openssl_rand_hex_32":
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case len(apiKey) < 16:
		warnings = append(warnings, "API_KEY is shorter than 16 characters - consider a longer key")
	}

	if os.Getenv("ENVIRONMENT") == "production" && os.Getenv("TRUSTED_PROXIES") == "" {
		warnings = append(warnings, "TRUSTED_PROXIES is not set - X-Forwarded-For headers will be ignored and client IPs will be the direct peer")
	}

	return warnings, nil
}
