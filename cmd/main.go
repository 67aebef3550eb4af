package main

import (
	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
