package database

import (
	"fmt"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate ensures the uuid extension and runs AutoMigrate for every model.
// The unique indexes it creates are load-bearing: duplicate emails, duplicate
// company profiles and duplicate applications are all rejected by the
// database, not by application-level checks.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobSeeker{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
