package services

import (
	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/models"
	"github.com/abdullahkazmii/BE-NutritionAi/utils"
)

const generatedPasswordLength = 8

type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin standard"`
}

type UpdateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,oneof=admin standard"`
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser stores a new account with a generated 8-character password and
// returns the plaintext once. It is never retrievable afterwards.
func CreateUser(input CreateUserInput) (*models.User, string, error) {
	password, err := utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, "", err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Username: input.Username,
		Password: hashed,
		Role:     input.Role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}
	return &user, password, nil
}

// UpdateUser applies a partial update to the target account. Admin accounts
// can only be edited by themselves.
func UpdateUser(actor *models.User, id uint, input UpdateUserInput) (*models.User, string, error) {
	user, err := FindUserByID(id)
	if err != nil {
		return nil, "", err
	}
	if user.IsAdmin() && user.ID != actor.ID {
		return nil, "", ErrForbidden
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	newPassword := ""
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, "", err
		}
		user.Password = hashed
		newPassword = input.Password
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, "", err
	}
	return user, newPassword, nil
}

// DeleteUser removes a standard account. Admin accounts are not deletable
// through this path at all.
func DeleteUser(id uint) error {
	user, err := FindUserByID(id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return ErrForbidden
	}
	return config.DB.Delete(user).Error
}
