package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func counts(t *testing.T, db *gorm.DB) (categories, questions int64) {
	t.Helper()
	require.NoError(t, db.Model(&Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&Question{}).Count(&questions).Error)
	return categories, questions
}

func TestSeedInsertsDefaults(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	categories, questions := counts(t, db)
	assert.Equal(t, int64(6), categories)
	assert.Equal(t, int64(19), questions)

	var sports Category
	require.NoError(t, db.First(&sports, 6).Error)
	assert.Equal(t, "Sports", sports.Type)

	// every seeded question points at a seeded category
	var orphans int64
	require.NoError(t, db.Model(&Question{}).Where("category NOT IN ?", []uint{1, 2, 3, 4, 5, 6}).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	categories, questions := counts(t, db)
	assert.Equal(t, int64(6), categories)
	assert.Equal(t, int64(19), questions)
}

func TestSeedSkipsWhenCategoriesExist(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&Category{Type: "Custom"}).Error)

	require.NoError(t, Seed(db))

	categories, questions := counts(t, db)
	assert.Equal(t, int64(1), categories)
	assert.Zero(t, questions)
}
