package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates the trivia tables if they do not exist.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Category{}, &Question{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
