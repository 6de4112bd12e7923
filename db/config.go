package db

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SQLiteConfig tunes the pragmas applied on open.
type SQLiteConfig struct {
	BusyTimeoutMs int
	WAL           bool
	ForeignKeys   bool
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Config struct {
	Driver      string
	DSN         string
	Pool        PoolConfig
	SQLite      SQLiteConfig
	AutoMigrate bool
}

// DefaultConfig returns the sqlite setup the bot runs with out of the box.
// A single connection keeps writes serialized; sqlite does not benefit
// from a larger pool here.
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite",
		DSN:    "",
		Pool: PoolConfig{
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 0,
		},
		SQLite: SQLiteConfig{
			BusyTimeoutMs: 5000,
			WAL:           true,
			ForeignKeys:   true,
		},
		AutoMigrate: true,
	}
}

// ResolveSQLiteDSN picks the database file when none is configured.
// An explicit DSN always wins. Otherwise an existing file is reused,
// preferring $HOME/.kira/kira_chats.sqlite over one in the working
// directory; with neither present the home location is created.
func ResolveSQLiteDSN(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn != "" {
		return dsn, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	homeDir := filepath.Join(home, ".kira")
	homeDB := filepath.Join(homeDir, "kira_chats.sqlite")

	for _, candidate := range []string{homeDB, filepath.Clean("./kira_chats.sqlite")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return "", err
	}
	return homeDB, nil
}
