package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workseedhq/workseed/internal/config"
	"github.com/workseedhq/workseed/internal/models"
)

var DB *gorm.DB

// Connect opens the configured database and stores the handle in the
// package-global DB. The sqlite driver creates the parent directory of the
// database file so a fresh checkout can run without setup.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Database.Path)
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.Database.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// Migrate creates or updates the schema for every seed table, in stage order.
func Migrate() error {
	tables := models.Tables()
	targets := make([]interface{}, len(tables))
	for i, table := range tables {
		targets[i] = table.Model
	}
	if err := DB.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
