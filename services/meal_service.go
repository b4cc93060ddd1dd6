package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/models"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/utils"

	"gorm.io/gorm"
)

// MealService owns meal persistence and the daily report. All day
// bucketing happens in one reference timezone so a meal logged at
// 23:59 never slides into the next day.
type MealService struct {
	db  *gorm.DB
	loc *time.Location
}

func NewMealService(db *gorm.DB, loc *time.Location) *MealService {
	if loc == nil {
		loc = time.Local
	}
	return &MealService{db: db, loc: loc}
}

// AddMeal records one meal for the owning account.
func (s *MealService) AddMeal(userID uint, name string, calories int, date time.Time, notes string) (*models.Meal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErr("meal name is required")
	}
	if calories <= 0 {
		return nil, validationErr("calories must be a positive number")
	}

	meal := models.Meal{
		UserID:   userID,
		Name:     name,
		Calories: calories,
		Date:     date,
		Notes:    notes,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal only if it belongs to userID. A meal
// owned by someone else reports the same ErrMealNotFound as an id
// that never existed.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// ListRecent returns the user's latest meals, newest first.
func (s *MealService) ListRecent(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 3
	}
	meals := []models.Meal{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// DailyReport is one day's meals plus the derived calorie picture.
type DailyReport struct {
	Meals         []models.Meal      `json:"meals"`
	TotalCalories int                `json:"totalCalories"`
	BMI           *float64           `json:"bmi"`
	Suggestions   []utils.Suggestion `json:"suggestions"`
	CalorieGoal   int                `json:"calorieGoal"`
}

// DailyReport aggregates the user's meals for one calendar day.
// BMI comes from the current stored metrics, not a meal-time
// snapshot. An unknown user fails the whole report.
func (s *MealService) DailyReport(userID uint, day time.Time) (*DailyReport, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// [midnight, next midnight) in the reference timezone. AddDate
	// instead of Add(24h) so DST days keep their true length.
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1)

	meals := []models.Meal{}
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range meals {
		total += m.Calories
	}

	bmi := utils.CalculateBMI(user.WeightKg, user.HeightCm)

	return &DailyReport{
		Meals:         meals,
		TotalCalories: total,
		BMI:           bmi,
		Suggestions:   utils.SuggestMeals(bmi),
		CalorieGoal:   utils.DailyCalorieGoal(bmi),
	}, nil
}
