package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nutrimix/internal/models"
)

// OpenGORM opens a relational database for the given driver ("postgres" or
// "sqlite") and migrates the schema.
func OpenGORM(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", driver)
	}

	return openGORM(driver, dialector, Migrate)
}

// openGORM connects through dialector and runs migrate, releasing the
// connection pool when migration fails.
func openGORM(name string, dialector gorm.Dialector, migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", name, err)
	}

	if err := migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}

	log.Printf("Connected to %s database", name)
	return db, nil
}

// Migrate creates or updates the tables for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Invoice{}, &models.Coupon{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
