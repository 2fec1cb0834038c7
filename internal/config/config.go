package config

import (
	"os"
	"strings"
)

const defaultMigrationsDir = "migrations"

type Config struct {
	// SnapshotDSN, when set, enables exporting the final account
	// snapshot to Postgres after the stream has been processed.
	SnapshotDSN   string
	MigrationsDir string
	LogRejected   bool
}

func Load() (Config, error) {
	dsn := strings.TrimSpace(os.Getenv("SNAPSHOT_DSN"))

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	logRejected := true
	if v := strings.TrimSpace(os.Getenv("LOG_REJECTED")); v != "" {
		logRejected = !strings.EqualFold(v, "false") && v != "0"
	}

	return Config{
		SnapshotDSN:   dsn,
		MigrationsDir: migrationsDir,
		LogRejected:   logRejected,
	}, nil
}
