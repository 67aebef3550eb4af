package routes

import (
	"net/http"

	"github.com/abdullahkazmii/BE-NutritionAi/controllers"
	"github.com/abdullahkazmii/BE-NutritionAi/middlewares"
	"github.com/abdullahkazmii/BE-NutritionAi/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	r.POST("/login/", controllers.Login)
	r.POST("/admin/login/", controllers.AdminLogin)

	planController := controllers.NewPlanController(services.NewPlanService())

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/onboarding", controllers.Onboarding)
		auth.POST("/generate-plan/", planController.GeneratePlan)
		auth.GET("/user-generated-plans/", planController.GetUserGeneratedPlans)

		// Admin-only user management
		admin := auth.Group("/")
		admin.Use(middlewares.AdminMiddleware())
		{
			admin.GET("/users", controllers.GetUsers)
			admin.POST("/users", controllers.CreateUser)
			admin.PATCH("/user/:id", controllers.UpdateUser)
			admin.DELETE("/user/:id", controllers.DeleteUser)
		}
	}

	return r
}
