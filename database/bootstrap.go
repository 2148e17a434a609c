// database/bootstrap.go
package database

import (
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"msitumum/config"
	"msitumum/entities"
)

// Open connects to the configured store. Migrations are run separately.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return OpenPostgres(cfg.DSN)
	case "sqlite", "":
		return OpenSQLite(cfg.Path)
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
}

func gormConfig(level gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

func OpenSQLite(path string) (*gorm.DB, error) {
	// WAL and a busy timeout let concurrent requests share one file.
	// SQLite leaves foreign keys off unless asked per connection.
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(gormlogger.Silent))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(gormlogger.Warn))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.RevokedToken{},
		&entities.PlantingSite{},
		&entities.TreeSpecies{},
		&entities.PlantingRecord{},
		&entities.MonitoringRecord{},
		&entities.Nursery{},
		&entities.NurseryInventory{},
		&entities.BiodiversityRecord{},
		&entities.CostEntry{},
		&entities.Prediction{},
	}
}

// Migrate creates or updates the schema and seeds the species catalog.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := SeedSpecies(db); err != nil {
		return fmt.Errorf("seed species: %w", err)
	}
	return nil
}
