package database

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackforge/kartchar/internal/config"
	"github.com/trackforge/kartchar/internal/model"
)

// memoryDBs numbers in-memory databases so each Open gets its own.
var memoryDBs atomic.Uint64

// Open connects to the database selected by cfg.Type ("sqlite" or
// "postgres") and migrates the schema.
func Open(cfg config.StorageConfig, log zerolog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Type {
	case "postgres":
		log.Debug().Str("host", cfg.DB.Host).Str("database", cfg.DB.Database).Msg("Connecting to Postgres DB")
		db, err = GetPostgresDB(cfg.DB)
	case "sqlite":
		db, err = GetSqliteDB(cfg.SQLite.Path)
		if err == nil {
			if cfg.SQLite.Path == "" {
				log.Info().Msg("Using local SQLite DB in memory")
			} else {
				log.Info().Str("path", cfg.SQLite.Path).Msg("Using local SQLite DB")
			}
		}
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s DB: %w", cfg.Type, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql interface: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to validate connection: %w", err)
	}
	if cfg.Type == "postgres" {
		sqlDB.SetMaxOpenConns(10)
	}

	log.Info().Msg("Migrating schema")
	if err := Migrate(db); err != nil {
		closeDB(db)
		return nil, err
	}
	log.Info().Msg("Database setup complete")
	return db, nil
}

// Migrate creates or updates the tables in model.DatabaseModels.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// GetPostgresDB returns a connection to the Postgres database.
func GetPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Database,
	)

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// GetSqliteDB returns a connection to a SQLite database.
// If path is empty, uses a private in-memory database.
func GetSqliteDB(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = fmt.Sprintf("file:kartchar-%d?mode=memory&cache=shared", memoryDBs.Add(1))
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// set PRAGMAS
	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA cache_size = -32000;",
		"PRAGMA temp_store = MEMORY;",
	}

	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			closeDB(db)
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	return db, nil
}

// closeDB releases the pool behind a connection that is being abandoned.
func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// DumpMemoryDBToDisk vacuums the in-memory database to a disk file.
func DumpMemoryDBToDisk(db *gorm.DB, sqliteFilePath string) error {
	if sqliteFilePath == "" {
		return fmt.Errorf("sqlite file path not set")
	}

	// remove existing file if it exists
	if exists, err := os.Stat(sqliteFilePath); err == nil && exists != nil {
		if err := os.Remove(sqliteFilePath); err != nil {
			return fmt.Errorf("error removing existing DB file: %w", err)
		}
	}

	err := db.Exec("VACUUM INTO 'file:" + sqliteFilePath + "';").Error
	if err != nil {
		return fmt.Errorf("error dumping memory DB to disk: %w", err)
	}

	return nil
}
