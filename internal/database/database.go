package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect establishes a connection to the database using the given driver
// ("sqlite" or "postgres") and DSN. TranslateError is enabled so constraint
// violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// regardless of driver.
func Connect(driver, dsn string) error {
	var err error

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	}

	switch driver {
	case "postgres":
		DB, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		DB, err = gorm.Open(sqlite.Open(dsn), cfg)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
