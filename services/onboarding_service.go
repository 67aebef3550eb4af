package services

import (
	"errors"
	"fmt"

	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnboardingForm is the flat one-time form payload. Units default to kg/cm
// when the client omits them.
type OnboardingForm struct {
	Gender                  string  `json:"gender" binding:"required"`
	AgeGroup                string  `json:"ageGroup" binding:"required"`
	CurrentWeight           float64 `json:"currentWeight" binding:"required"`
	WeightUnit              string  `json:"weightUnit"`
	Height                  float64 `json:"height" binding:"required"`
	HeightUnit              string  `json:"heightUnit"`
	TargetWeight            float64 `json:"targetWeight" binding:"required"`
	TargetWeightUnit        string  `json:"targetWeightUnit"`
	TimeGoal                string  `json:"timeGoal" binding:"required"`
	PlanType                string  `json:"planType" binding:"required"`
	ActivityLevel           string  `json:"activityLevel"`
	YogaExperience          string  `json:"yogaExperience"`
	ExperienceDetails       string  `json:"experienceDetails"`
	WorkoutPreference       string  `json:"workoutPreference"`
	DietType                string  `json:"dietType" binding:"required"`
	DietRestrictions        string  `json:"dietRestrictions"`
	DietRestrictionsDetails string  `json:"dietRestrictionsDetails"`
	MealPreference          string  `json:"mealPreference" binding:"required"`
	DietGoals               string  `json:"dietGoals"`
	YogaType                string  `json:"yogaType"`
	WorkoutType             string  `json:"workoutType"`
	WorkoutDetails          string  `json:"workoutDetails"`
	WorkoutDays             string  `json:"workoutDays"`
	MedicalConditions       string  `json:"medicalConditions"`
	MedicalDetails          string  `json:"medicalDetails"`
}

func (f *OnboardingForm) applyDefaults() {
	if f.WeightUnit == "" {
		f.WeightUnit = "kg"
	}
	if f.TargetWeightUnit == "" {
		f.TargetWeightUnit = "kg"
	}
	if f.HeightUnit == "" {
		f.HeightUnit = "cm"
	}
}

// SubmitOnboarding fans the form out into the normalized rows in a single
// transaction: physical attributes on the user, get-or-create of the plan
// type, one UserPlan, one Activity, one UserActivity, and the upserted Meal.
// Any failure rolls the whole submission back.
func SubmitOnboarding(user *models.User, form OnboardingForm) error {
	form.applyDefaults()

	return config.DB.Transaction(func(tx *gorm.DB) error {
		user.Gender = form.Gender
		user.AgeGroup = form.AgeGroup
		user.Weight = form.CurrentWeight
		user.WeightUnit = form.WeightUnit
		user.TargetWeight = form.TargetWeight
		user.TargetWeightUnit = form.TargetWeightUnit
		user.Height = form.Height
		user.TargetHeightUnit = form.HeightUnit
		if err := tx.Save(user).Error; err != nil {
			return fmt.Errorf("updating user attributes: %w", err)
		}

		planType, err := getOrCreatePlanType(tx, form.PlanType)
		if err != nil {
			return fmt.Errorf("resolving plan type: %w", err)
		}

		userPlan := models.UserPlan{
			UserID:     user.ID,
			PlanTypeID: planType.ID,
			GoalTime:   form.TimeGoal,
		}
		if err := tx.Create(&userPlan).Error; err != nil {
			return fmt.Errorf("creating user plan: %w", err)
		}

		activity := models.Activity{
			PlanID:            planType.ID,
			YogaExperience:    form.YogaExperience,
			YogaType:          form.YogaType,
			WorkoutPreference: form.WorkoutPreference,
			WorkoutDays:       form.WorkoutDays,
			ActivityLevel:     form.ActivityLevel,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return fmt.Errorf("creating activity: %w", err)
		}

		userActivity := models.UserActivity{
			UserID:     user.ID,
			ActivityID: activity.ID,
		}
		if err := tx.Create(&userActivity).Error; err != nil {
			return fmt.Errorf("creating user activity: %w", err)
		}

		var meal models.Meal
		if err := tx.Where("user_id = ?", user.ID).First(&meal).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("looking up meal: %w", err)
			}
			meal = models.Meal{UserID: user.ID, PlanID: planType.ID}
		}
		meal.DietType = form.DietType
		meal.DietRestrictions = form.DietRestrictions
		meal.MealPreference = form.MealPreference
		meal.KeyGoals = form.DietGoals
		meal.MedicalRestrictions = form.MedicalConditions
		if err := tx.Save(&meal).Error; err != nil {
			return fmt.Errorf("saving meal: %w", err)
		}

		return nil
	})
}

// getOrCreatePlanType resolves the named row, inserting it on first use.
// The insert carries ON CONFLICT DO NOTHING so a request losing the race
// on a new name does not abort the enclosing transaction (Postgres refuses
// further statements after any failed one); the loser falls through to the
// lookup and converges on the winner's row.
func getOrCreatePlanType(tx *gorm.DB, name string) (*models.PlanType, error) {
	planType := models.PlanType{PlanName: name}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&planType)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &planType, nil
	}

	var existing models.PlanType
	if err := tx.Where("plan_name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
