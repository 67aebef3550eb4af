package controllers

import (
	"errors"
	"net/http"

	"github.com/abdullahkazmii/BE-NutritionAi/middlewares"
	"github.com/abdullahkazmii/BE-NutritionAi/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	planService *services.PlanService
}

func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// GeneratePlan forwards the assembled prompt to the model endpoint and logs
// the returned text. Upstream failures are reported as 502, never 404.
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	var req services.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middlewares.CurrentUser(c)
	generated, err := pc.planService.GeneratePlan(user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPlanType):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"generated_plan": generated.GeneratedPlan})
}

// GetUserGeneratedPlans lists the caller's prior generations, newest first.
func (pc *PlanController) GetUserGeneratedPlans(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	plans, err := services.ListGeneratedPlans(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}
