package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.False(t, cfg.Booking.CancelledReleasesSlot)
}

func TestLoad_FromTOML(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
type = "Postgres"

[database]
host = "db"
port = 5433
dbname = "appts"

[booking]
cancelled_releases_slot = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Type)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.True(t, cfg.Booking.CancelledReleasesSlot)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "unset keys keep defaults")
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
`)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("BOOKING_CANCELLED_RELEASES_SLOT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.True(t, cfg.Booking.CancelledReleasesSlot)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Type = "mongo" }},
		{name: "bad metrics path", mutate: func(c *Config) { c.Metrics.Path = "metrics" }},
		{name: "zero cache size", mutate: func(c *Config) { c.Cache.SlotsSize = 0 }},
		{name: "events without topic", mutate: func(c *Config) {
			c.Events.Enabled = true
			c.Events.Topic = ""
		}},
		{name: "sample ratio out of range", mutate: func(c *Config) { c.Tracing.SampleRatio = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", d.DSN())
}
