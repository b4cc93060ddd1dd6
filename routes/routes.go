package routes

import (
	"net/http"
	"time"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/controllers"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/middlewares"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers and mounts all routes.
func SetupRouter(db *gorm.DB, jwtSecret []byte, loc *time.Location) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db, jwtSecret)
	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db, loc)

	authCtl := controllers.NewAuthController(authSvc, userSvc)
	mealCtl := controllers.NewMealController(mealSvc, loc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	me := auth.Group("")
	me.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		me.GET("/me", authCtl.Me)
		me.PUT("/me", authCtl.UpdateMe)
	}

	meals := api.Group("/meals")
	meals.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		meals.POST("", mealCtl.AddMeal)
		meals.GET("", mealCtl.GetMealsByDate)
		meals.GET("/recent", mealCtl.RecentMeals)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	return r
}
