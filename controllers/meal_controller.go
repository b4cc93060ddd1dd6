package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/middlewares"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
	loc   *time.Location
}

func NewMealController(meals *services.MealService, loc *time.Location) *MealController {
	if loc == nil {
		loc = time.Local
	}
	return &MealController{meals: meals, loc: loc}
}

type AddMealInput struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Notes    string `json:"notes"`
}

// parseMealDate accepts either a bare day ("2026-09-01", midnight in
// the reference timezone) or a full RFC 3339 timestamp.
func (ctl *MealController) parseMealDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, ctl.loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (ctl *MealController) AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	date, err := ctl.parseMealDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD or RFC 3339"})
		return
	}

	meal, err := ctl.meals.AddMeal(middlewares.UserID(c), input.Name, input.Calories, date, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

// GetMealsByDate answers /api/meals?date=YYYY-MM-DD with the daily
// report: that day's meals, the calorie total, BMI and suggestions.
func (ctl *MealController) GetMealsByDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date query parameter is required"})
		return
	}
	day, err := time.ParseInLocation("2006-01-02", raw, ctl.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
		return
	}

	report, err := ctl.meals.DailyReport(middlewares.UserID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (ctl *MealController) RecentMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	meals, err := ctl.meals.ListRecent(middlewares.UserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal not found"})
		return
	}

	if err := ctl.meals.DeleteMeal(middlewares.UserID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
