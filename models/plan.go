package models

import (
	"gorm.io/gorm"
)

// PlanType is a named category of plan. Names are unique; onboarding
// resolves-or-creates one row per distinct name.
type PlanType struct {
	gorm.Model
	PlanName string `json:"plan_name" gorm:"uniqueIndex;not null"`
}

func (PlanType) TableName() string { return "plan_type" }

type UserPlan struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	PlanTypeID uint   `json:"plan_type_id" gorm:"index;not null"`
	GoalTime   string `json:"goal_time" gorm:"not null"`

	User     User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PlanType PlanType `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (UserPlan) TableName() string { return "user_plan" }

type Activity struct {
	gorm.Model
	PlanID            uint   `json:"plan_id" gorm:"not null"`
	YogaExperience    string `json:"yoga_experience"`
	YogaType          string `json:"yoga_type"`
	WorkoutPreference string `json:"workout_preference"`
	WorkoutDays       string `json:"workout_days"`
	ActivityLevel     string `json:"activity_level"`

	PlanType PlanType `json:"-" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

func (Activity) TableName() string { return "activity" }

type UserActivity struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"not null"`
	ActivityID uint `json:"activity_id" gorm:"not null"`

	User     User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Activity Activity `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (UserActivity) TableName() string { return "user_activity" }

// Meal holds a user's dietary preferences. One row per user, upserted on
// each onboarding submission.
type Meal struct {
	gorm.Model
	UserID              uint   `json:"user_id" gorm:"index;not null"`
	PlanID              uint   `json:"plan_id" gorm:"not null"`
	DietType            string `json:"diet_type" gorm:"not null"`
	MealPreference      string `json:"meal_preference" gorm:"not null"`
	DietRestrictions    string `json:"diet_restrictions"`
	KeyGoals            string `json:"key_goals"`
	MedicalRestrictions string `json:"medical_restrictions"`

	User     User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PlanType PlanType `json:"-" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

func (Meal) TableName() string { return "meal" }

// UserGeneratedPlan is the append-only log of model invocations. Rows are
// created once and never updated.
type UserGeneratedPlan struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	PlanType      string `json:"plan_type" gorm:"not null"`
	GeneratedPlan string `json:"generated_plan" gorm:"type:text;not null"`
	GoalTime      string `json:"goal_time"`

	User User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (UserGeneratedPlan) TableName() string { return "user_generated_plans" }
