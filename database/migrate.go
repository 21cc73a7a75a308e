package database

import (
	"fmt"

	"recruivo_backend/internal/config"
	"recruivo_backend/internal/logger"
	"recruivo_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the DSN from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to ensure uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.StudentProfile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
		&models.Skill{},
		&models.StudentSkill{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	return MigrateLegacyApplications(db)
}

// MigrateLegacyApplications backfills student_id on application rows written
// before applications referenced users directly. Legacy rows carry only the
// student's email; rows whose email matches no user are left untouched and
// logged. Runs once per startup and is a no-op when nothing qualifies.
func MigrateLegacyApplications(db *gorm.DB) error {
	// student_id is a uuid column, so compare through text for the
	// empty-string shape some legacy exports carry.
	result := db.Exec(`
		UPDATE applications a
		SET student_id = u.id
		FROM users u
		WHERE (a.student_id IS NULL OR a.student_id::text = '')
		  AND a.student_email <> ''
		  AND u.email = a.student_email`)
	if result.Error != nil {
		return fmt.Errorf("legacy application backfill failed: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Info("Backfilled legacy applications", "rows", result.RowsAffected)
	}

	var orphans int64
	err := db.Model(&models.Application{}).
		Where("student_id IS NULL OR student_id::text = ''").
		Count(&orphans).Error
	if err != nil {
		return err
	}
	if orphans > 0 {
		logger.Warn("Applications with no matching user remain unlinked", "count", orphans)
	}
	return nil
}
