package services

import (
	"errors"

	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/models"
	"github.com/abdullahkazmii/BE-NutritionAi/utils"

	"gorm.io/gorm"
)

// Authenticate resolves a username/password pair to a user row. Unknown
// usernames and hash mismatches are indistinguishable to the caller.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, result.Error
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// AuthenticateAdmin is the admin-only login variant: correct credentials for
// a non-admin account still fail, with a distinct error.
func AuthenticateAdmin(username, password string) (*models.User, error) {
	user, err := Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
