package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"gorm.io/gorm"
)

// ReportService answers the calorie questions: one meal, one day, one
// trailing week. All math happens in MealTotal; the service only fetches.
type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// MealTotal sums calories over a meal's resolved rows: rate is kcal per 100
// units, so each row contributes CaloriesPerPortion/100 × Quantity. An empty
// meal totals zero.
func MealTotal(meal models.Meal) (float64, error) {
	var total float64
	for _, row := range meal.Foods {
		if row.Food == nil {
			return 0, fmt.Errorf("%w: meal %d food %d", ErrUnresolvedAssociation, row.MealID, row.FoodID)
		}
		total += row.Food.CaloriesPerPortion / 100 * row.Quantity
	}
	return total, nil
}

func (s *ReportService) MealCalories(mealID uint) (float64, error) {
	var meal models.Meal
	err := s.db.Preload("Foods.Food").First(&meal, mealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: meal %d", ErrNotFound, mealID)
		}
		return 0, err
	}
	pruneDangling(&meal)
	return MealTotal(meal)
}

// DailyTotal sums MealTotal over every meal the user ate on the given
// calendar date. Time-of-day is ignored; no meals that day means zero.
func (s *ReportService) DailyTotal(userID uint, date time.Time) (float64, error) {
	return s.rangeTotal(userID, dayStart(date), dayEnd(date))
}

// WeeklyTotal covers the inclusive 7-day window ending on end.
func (s *ReportService) WeeklyTotal(userID uint, end time.Time) (float64, error) {
	return s.rangeTotal(userID, dayStart(end.AddDate(0, 0, -6)), dayEnd(end))
}

func (s *ReportService) rangeTotal(userID uint, from, to time.Time) (float64, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return 0, err
	}

	var meals []models.Meal
	err := s.db.
		Preload("Foods.Food").
		Where("user_id = ? AND eaten_at BETWEEN ? AND ?", userID, from, to).
		Order("eaten_at ASC").
		Find(&meals).Error
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range meals {
		pruneDangling(&meals[i])
		t, err := MealTotal(meals[i])
		if err != nil {
			return 0, err
		}
		total += t
	}
	return total, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
