package services

import (
	"testing"

	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/models"
	"github.com/abdullahkazmii/BE-NutritionAi/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at an in-memory store with the full schema
// and the seeded admin account.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// A pooled second connection would get its own empty :memory: store.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.PlanType{},
		&models.UserPlan{},
		&models.Activity{},
		&models.UserActivity{},
		&models.Meal{},
		&models.UserGeneratedPlan{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	if err := config.SeedAdmin(db); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}

	config.DB = db
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := models.User{
		Name:     "Test " + username,
		Email:    username + "@example.com",
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return &user
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return count
}
