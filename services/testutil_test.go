package services

import (
	"testing"
	"time"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.MealFood{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := NewUserService(db).Create(UserInput{
		Name:      "Test User",
		Email:     email,
		Height:    170,
		Weight:    70,
		Objective: "maintain weight",
	})
	require.NoError(t, err)
	return user
}

func createTestFood(t *testing.T, db *gorm.DB, name string, caloriesPerPortion float64) *models.Food {
	t.Helper()
	food, err := NewFoodService(db).Create(FoodInput{
		Name:               name,
		Type:               "test",
		Unit:               "g",
		CaloriesPerPortion: caloriesPerPortion,
	})
	require.NoError(t, err)
	return food
}

func logTestMeal(t *testing.T, db *gorm.DB, userID uint, name string, eatenAt time.Time, foods []MealFoodInput) *models.Meal {
	t.Helper()
	meal, err := NewMealService(db).Create(MealDraft{
		UserID:  userID,
		Name:    name,
		EatenAt: eatenAt,
		Foods:   foods,
	})
	require.NoError(t, err)
	return meal
}
