// Package gormstorage implements the storage.Backend interface on any GORM
// dialect. Rows are model.Snapshot, upserted by name.
package gormstorage

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trackforge/kartchar/internal/characteristics"
	"github.com/trackforge/kartchar/internal/database"
	"github.com/trackforge/kartchar/internal/model"
	"github.com/trackforge/kartchar/internal/model/convert"
	"github.com/trackforge/kartchar/internal/storage"
)

// Backend persists snapshots through GORM
type Backend struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New creates a GORM backend on an open connection
func New(db *gorm.DB, log zerolog.Logger) *Backend {
	return &Backend{db: db, log: log}
}

// DB returns the underlying connection
func (b *Backend) DB() *gorm.DB {
	return b.db
}

// Init migrates the schema
func (b *Backend) Init() error {
	return database.Migrate(b.db)
}

// Close closes the underlying connection pool
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// Save upserts the snapshot row for name
func (b *Backend) Save(name string, s characteristics.Snapshot) error {
	row, err := convert.SnapshotToModel(name, s)
	if err != nil {
		return err
	}

	err = b.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"updated_at", "scalar_values", "turn_radius", "time_full_steer",
			"gear_switch_ratio", "gear_power_increase", "wheel_positions", "skidding",
			"gear_count", "wheel_count", "mass", "footprint_area",
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}

	b.log.Debug().Str("kart", name).Int("gears", row.GearCount).Int("wheels", row.WheelCount).Msg("Saved snapshot")
	return nil
}

// Load reads the snapshot stored under name
func (b *Backend) Load(name string) (characteristics.Snapshot, error) {
	var row model.Snapshot
	err := b.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return characteristics.Snapshot{}, fmt.Errorf("%s: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return characteristics.Snapshot{}, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return convert.ModelToSnapshot(row)
}

// List returns the stored names, sorted
func (b *Backend) List() ([]string, error) {
	var names []string
	if err := b.db.Model(&model.Snapshot{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return names, nil
}

// Delete removes the row for name
func (b *Backend) Delete(name string) error {
	res := b.db.Unscoped().Where("name = ?", name).Delete(&model.Snapshot{})
	if res.Error != nil {
		return fmt.Errorf("delete snapshot %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", name, storage.ErrNotFound)
	}
	return nil
}
