// internal/storage/factory.go
package storage

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/scenforge/unitcreator/internal/config"
	"github.com/scenforge/unitcreator/internal/database"
	"github.com/scenforge/unitcreator/internal/storage/file"
	"github.com/scenforge/unitcreator/internal/storage/gormstore"
	"github.com/scenforge/unitcreator/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration. The returned
// backend still needs Init called on it.
func NewBackend(cfg config.StorageConfig, log *slog.Logger, dbLog zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "file":
		return file.New(cfg.File, log), nil
	case "sqlite":
		dbm := database.NewManager(dbLog)
		db, err := dbm.GetSqliteDB("")
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		return sqlite.New(sqlite.Config{
			DumpInterval: cfg.SQLite.DumpInterval,
			DumpPath:     cfg.SQLite.Path,
		}, db, log), nil
	case "postgres":
		dbm := database.NewManager(dbLog)
		if err := dbm.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		return gormstore.New(gormstore.Dependencies{
			DB:  dbm.DB,
			Log: log,
		}), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
