package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"brainhub/backend/config"
	"brainhub/backend/models"
)

// InitDB opens the postgres connection and migrates the schema.
// TranslateError must stay on: the repository layer relies on
// gorm.ErrDuplicatedKey to map unique-constraint violations, which is how
// concurrent duplicate registrations and enrollments get their 409s.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := MigrateModels(db); err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateModels creates or updates the tables for every entity, including
// the unique email column and the composite index on (learner_id, course_id).
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Learner{},
		&models.Course{},
		&models.Progress{},
		&models.Recommendation{},
	)
}
