package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/database"
	"github.com/trackforge/kartchar/internal/storage"
	gormstorage "github.com/trackforge/kartchar/internal/storage/gorm"
	"github.com/trackforge/kartchar/internal/storage/memory"
	sqlitestorage "github.com/trackforge/kartchar/internal/storage/sqlite"
)

func createStorageBackend(storageCfg config.StorageConfig, log zerolog.Logger) (storage.Backend, error) {
	switch storageCfg.Type {
	case "postgres":
		db, err := database.Open(storageCfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres backend: %w", err)
		}
		log.Info().Msg("Postgres storage backend initialized")
		return gormstorage.New(db, log), nil

	case "sqlite":
		backend, err := sqlitestorage.New(storageCfg.SQLite, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite backend: %w", err)
		}
		log.Info().Msg("SQLite storage backend initialized")
		return backend, nil

	case "memory", "":
		log.Info().Msg("Memory storage backend initialized")
		return memory.New(storageCfg.Memory), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageCfg.Type)
	}
}
