// Package sqlitestorage implements the storage.Backend interface using a
// SQLite database, either on disk or in memory with a dump on close.
// It wraps the GORM backend via composition.
package sqlitestorage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/database"
	gormstorage "github.com/trackforge/kartchar/internal/storage/gorm"
)

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	cfg config.SQLiteConfig
	log zerolog.Logger
}

// New creates a new SQLite storage backend.
func New(cfg config.SQLiteConfig, log zerolog.Logger) (*Backend, error) {
	db, err := database.GetSqliteDB(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite DB: %w", err)
	}

	return &Backend{
		Backend: gormstorage.New(db, log),
		cfg:     cfg,
		log:     log,
	}, nil
}

// Close dumps an in-memory database to DumpPath, then closes the connection.
func (b *Backend) Close() error {
	if b.cfg.Path == "" && b.cfg.DumpPath != "" {
		start := time.Now()
		if err := database.DumpMemoryDBToDisk(b.DB(), b.cfg.DumpPath); err != nil {
			b.log.Error().Err(err).Msg("Error dumping to disk")
		} else {
			b.log.Debug().Dur("duration", time.Since(start)).Str("path", b.cfg.DumpPath).Msg("Dumped to disk")
		}
	}
	return b.Backend.Close()
}
