package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[logs]
level = "debug"

[server]
http_port = 8081

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "interpreters"

[redis]
enabled = true
url = "redis://localhost:6379/0"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.DefaultInterval())
	assert.Equal(t, 60, cfg.Slots.DurationMinutes)
	assert.Equal(t, 30, cfg.Slots.StepMinutes)
	assert.Equal(t, "interpreter.appointments", cfg.RabbitMQ.Exchange)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=interpreters sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("INTERPRETER_DATABASE_PASSWORD", "secret")
	t.Setenv("INTERPRETER_SCHEDULER_DEFAULT_INTERVAL_MS", "60000")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, time.Minute, cfg.Scheduler.DefaultInterval())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing database",
			content: "[server]\nhttp_port = 8080\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "redis without url",
			content: "[database]\nhost = \"db\"\ndbname = \"x\"\n[redis]\nenabled = true\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "broken toml",
			content: "[database\n",
			wantErr: ErrReadConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
