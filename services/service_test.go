package services

import (
	"testing"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }

func createTestUser(t *testing.T, db *gorm.DB, email string, heightCm, weightKg *float64) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "irrelevant-hash",
		HeightCm: heightCm,
		WeightKg: weightKg,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}
