// Package sqlite implements the storage.Backend interface on an in-memory
// SQLite database with periodic disk dumps via VACUUM INTO. It wraps the
// gorm backend via composition; the only SQLite-specific concerns are the
// dump loop and its lifecycle.
package sqlite

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/scenforge/unitcreator/internal/database"
	"github.com/scenforge/unitcreator/internal/storage/gormstore"
)

// Config holds configuration for the SQLite storage backend.
type Config struct {
	DumpInterval time.Duration
	DumpPath     string // Path for periodic VACUUM INTO dumps
}

// Backend wraps the gorm backend for SQLite-specific behavior.
type Backend struct {
	*gormstore.Backend
	db       *gorm.DB
	cfg      Config
	log      *slog.Logger
	stopChan chan struct{}
}

// New creates a new SQLite storage backend on the given connection.
func New(cfg Config, db *gorm.DB, log *slog.Logger) *Backend {
	if log == nil {
		log = slog.Default()
	}
	return &Backend{
		Backend: gormstore.New(gormstore.Dependencies{
			DB:  db,
			Log: log,
		}),
		db:       db,
		cfg:      cfg,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Init initializes the embedded gorm backend and starts the dump goroutine.
func (b *Backend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}

	if b.cfg.DumpPath != "" && b.cfg.DumpInterval > 0 {
		go b.dumpLoop()
	}

	return nil
}

// Close stops the dump goroutine and closes the embedded gorm backend.
func (b *Backend) Close() error {
	close(b.stopChan)
	return b.Backend.Close()
}

// dumpLoop periodically dumps the in-memory SQLite database to disk via
// VACUUM INTO. VACUUM INTO creates a point-in-time snapshot, so no pause
// mechanism is needed.
func (b *Backend) dumpLoop() {
	ticker := time.NewTicker(b.cfg.DumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			start := time.Now()
			if err := database.DumpMemoryDBToDisk(b.db, b.cfg.DumpPath); err != nil {
				b.log.Error("Failed to dump database to disk", "error", err)
			} else {
				b.log.Debug("Dumped database to disk", "duration", time.Since(start))
			}
		}
	}
}
