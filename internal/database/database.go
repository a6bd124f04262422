package database

import (
	"fmt"
	"log"

	"github.com/rank-matters/backend/internal/config"
	"github.com/rank-matters/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection successful")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	log.Println("Running migrations...")

	err := db.AutoMigrate(
		&models.Exam{},
		&models.CandidateResult{},
	)
	if err != nil {
		return err
	}

	// Rank queries scan per-exam slices of the result table constantly.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_exam_score ON candidate_results(exam_id, total_score)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_exams_slug ON exams(slug)")

	return nil
}
