package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER/DB_DSN. The default
// is a local sqlite file, which fits the single-venue kiosk deployment;
// mysql is available when the two registers share a networked store.
// Foreign-key creation is disabled on migration because order items are
// allowed to keep dangling dish references after a menu delete.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")

	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	switch driver {
	case "sqlite":
		if dsn == "" {
			dsn = "trattoria.db"
		}
		return gorm.Open(sqlite.Open(dsn), cfg)
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for the mysql driver")
		}
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
