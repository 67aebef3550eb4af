package controllers

import (
	"net/http"

	"github.com/abdullahkazmii/BE-NutritionAi/middlewares"
	"github.com/abdullahkazmii/BE-NutritionAi/services"

	"github.com/gin-gonic/gin"
)

// Onboarding accepts the one-time form submission and fans it out into the
// caller's plan, activity and meal rows.
func Onboarding(c *gin.Context) {
	var form services.OnboardingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	if err := services.SubmitOnboarding(user, form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Onboarding data submitted successfully",
		"submitted_data": form,
	})
}
