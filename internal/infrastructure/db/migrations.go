package db

import (
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Task{},
	)
	if err != nil {
		return err
	}

	return createCustomIndexes(db)
}

func createCustomIndexes(db *gorm.DB) error {
	// Composite index backing the daily quota count and the monthly
	// aggregation scans.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tasks_owner_created
		ON tasks (owner_id, created_at)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		return err
	}

	return nil
}
