package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
port = 9000
log_level = "debug"
log_to_stdout = true
postgres_db_name = "fitplan_dev"
redis_host = "localhost"
redis_port = "6379"
write_rate_limit_per_min = 30
allowed_origins = ["http://localhost:3000"]
mcp_enabled = true

[production]
host = "0.0.0.0"
port = 8000
environment = "production"
logs_path = "/var/log/fitplan/service"
postgres_host = "db"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeTestConfig(t, testToml)

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "fitplan_dev", cfg.PostgresDBName)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.MCPEnabled)
	assert.True(t, cfg.RateLimitEnabled())
}

func TestLoad_Production(t *testing.T) {
	path := writeTestConfig(t, testToml)

	cfg, err := Load("PRODUCTION", path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "db", cfg.PostgresHost)
	assert.Equal(t, "fitplan", cfg.PostgresDBName)
	assert.Equal(t, "2112", cfg.PrometheusMetricsPort)
	assert.False(t, cfg.RateLimitEnabled())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("dev", "/invalid/path/config.toml")
	assert.Error(t, err)

	path := writeTestConfig(t, testToml)
	_, err = Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	path = writeTestConfig(t, "[production]\nport = 8000\n")
	_, err = Load("development", path)
	assert.EqualError(t, err, "no config section for env: development")

	path = writeTestConfig(t, "[development]\nport = 70000\n")
	_, err = Load("development", path)
	assert.EqualError(t, err, "invalid port: 70000")

	path = writeTestConfig(t, "[development]\nwrite_rate_limit_per_min = -1\n")
	_, err = Load("development", path)
	assert.Error(t, err)
}
