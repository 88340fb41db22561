package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T, vars []string) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, "value-long-enough-123")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv(ServerEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv(ServerEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setAll(t, BotEnvVars)
	t.Setenv("DISCORD_CHANNEL_ID", "")

	err := ValidateEnv(BotEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DISCORD_CHANNEL_ID")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setAll(t, ServerEnvVars)

	assert.NoError(t, ValidateEnv(ServerEnvVars))
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setAll(t, ServerEnvVars)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "short")
	t.Setenv("DEBUG_IMPERSONATION", "true")

	warnings, err := ValidateEnvWithWarnings(ServerEnvVars)
	require.NoError(t, err)

	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "DEBUG_IMPERSONATION")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	setAll(t, ServerEnvVars)
	t.Setenv("DEBUG_IMPERSONATION", "")

	warnings, err := ValidateEnvWithWarnings(ServerEnvVars)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
