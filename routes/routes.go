package routes

import (
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/controllers"
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userCtl := controllers.NewUserController(services.NewUserService(db))
	foodCtl := controllers.NewFoodController(services.NewFoodService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	reportCtl := controllers.NewReportController(services.NewReportService(db))

	users := r.Group("/users")
	{
		users.POST("", userCtl.CreateUser)
		users.GET("", userCtl.ListUsers)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.DELETE("/:id", userCtl.DeleteUser)

		users.GET("/:id/meals", mealCtl.ListUserMeals)
		users.GET("/:id/calories/daily", reportCtl.GetDailyCalories)
		users.GET("/:id/calories/weekly", reportCtl.GetWeeklyCalories)
	}

	foods := r.Group("/foods")
	{
		foods.POST("", foodCtl.CreateFood)
		foods.GET("", foodCtl.ListFoods)
		foods.GET("/:id", foodCtl.GetFood)
		foods.PUT("/:id", foodCtl.UpdateFood)
		foods.DELETE("/:id", foodCtl.DeleteFood)
	}

	meals := r.Group("/meals")
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
		meals.GET("/:id/calories", reportCtl.GetMealCalories)
	}

	return r
}
