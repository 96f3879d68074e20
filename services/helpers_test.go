package services

import (
	"testing"

	"trivia/config"
	"trivia/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(&config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, types ...string) []models.Category {
	t.Helper()

	categories := make([]models.Category, len(types))
	for i, typ := range types {
		categories[i] = models.Category{Type: typ}
	}
	require.NoError(t, db.Create(&categories).Error)
	return categories
}

func seedQuestions(t *testing.T, db *gorm.DB, category uint, texts ...string) []models.Question {
	t.Helper()

	questions := make([]models.Question, len(texts))
	for i, text := range texts {
		questions[i] = models.Question{
			Question:   text,
			Answer:     "answer to " + text,
			Category:   category,
			Difficulty: 1 + i%5,
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}
