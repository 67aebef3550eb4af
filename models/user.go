package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

type User struct {
	gorm.Model
	Name             string  `json:"name" gorm:"not null"`
	Email            string  `json:"email" gorm:"uniqueIndex;not null"`
	Username         string  `json:"username" gorm:"uniqueIndex;not null"`
	Password         string  `json:"-"`
	Gender           string  `json:"gender"`
	Weight           float64 `json:"weight"`
	TargetWeight     float64 `json:"target_weight"`
	WeightUnit       string  `json:"weight_unit"`
	TargetWeightUnit string  `json:"target_weight_unit"`
	Height           float64 `json:"height"`
	TargetHeightUnit string  `json:"target_height_unit"`
	AgeGroup         string  `json:"age_group"`
	Role             string  `json:"role" gorm:"not null"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
