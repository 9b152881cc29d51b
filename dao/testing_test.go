package dao

import (
	"path/filepath"
	"testing"

	"Immob/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "immob.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// sqlite allows one writer; serializing the pool avoids lock errors in
	// the concurrency tests.
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.User{}, &models.UserProfile{}, &models.PasswordResetToken{},
		&models.PropertyCategory{}, &models.PropertyType{}, &models.Location{},
		&models.Property{}, &models.PropertyImage{}, &models.SearchHistory{},
		&models.Favorite{}, &models.Review{}, &models.ReviewLike{}, &models.ReviewImage{},
		&models.Notification{}, &models.ApplicationFeedback{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProperty(t *testing.T, db *gorm.DB, id string, ownerID int64) *models.Property {
	t.Helper()
	item := &models.Property{
		ID:             id,
		Title:          "Villa à Bastos",
		Description:    "Grande villa avec jardin",
		PropertyTypeID: 1,
		LocationID:     1,
		Status:         models.PropertyStatusForSale,
		Price:          75000000,
		Currency:       "XAF",
		Area:           320,
		OwnerID:        ownerID,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return item
}
