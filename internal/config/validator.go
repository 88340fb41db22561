package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ServerEnvVars lists the variables the API server cannot start without
var ServerEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// BotEnvVars lists the variables the chat bot cannot start without
var BotEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DISCORD_TOKEN",
	"DISCORD_CHANNEL_ID",
	"API_KEY",
}

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 16

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv(required []string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports risky but legal settings
func ValidateEnvWithWarnings(required []string) ([]string, error) {
	if err := ValidateEnv(required); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if key := os.Getenv("API_KEY"); key != "" && len(key) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters - generate a secure key with: openssl rand -hex 32", MinAPIKeyLength))
	}
	if on, _ := strconv.ParseBool(os.Getenv("DEBUG_IMPERSONATION")); on {
		warnings = append(warnings, "DEBUG_IMPERSONATION is enabled - any channel member can act as another player")
	}

	return warnings, nil
}
