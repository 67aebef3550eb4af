package config

import (
	"fmt"
	"log"
	"os"

	"github.com/abdullahkazmii/BE-NutritionAi/models"
	"github.com/abdullahkazmii/BE-NutritionAi/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError surfaces driver unique-constraint violations as
	// gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.PlanType{},
		&models.UserPlan{},
		&models.Activity{},
		&models.UserActivity{},
		&models.Meal{},
		&models.UserGeneratedPlan{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedAdmin(DB); err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}
}

// SeedAdmin creates the bootstrap admin account if no row with the admin
// username exists yet. The password defaults to admin123 and can be
// overridden with ADMIN_PASSWORD before first start.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@nutritionai.local",
		Username: "admin",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
