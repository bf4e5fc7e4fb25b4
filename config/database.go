package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
)

// OpenDB opens the database connection and migrates the schema.
// The handle is returned to the caller rather than stored as a
// package global so the stores can be constructed with a substitute
// backend in tests.
func OpenDB(config Config) (*gorm.DB, error) {
	dsn := config.GetDBConnString()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrateDB(db); err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateDB migrates all table schemas.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.SurfSession{},
		&models.Record{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}
	return nil
}
