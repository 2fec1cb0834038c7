package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/payment-engine/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNAPSHOT_DSN", "")
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("LOG_REJECTED", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.SnapshotDSN)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.True(t, cfg.LogRejected)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_DSN", " host=localhost dbname=engine ")
	t.Setenv("MIGRATIONS_DIR", "db/migrations")
	t.Setenv("LOG_REJECTED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "host=localhost dbname=engine", cfg.SnapshotDSN)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.False(t, cfg.LogRejected)
}
