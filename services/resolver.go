package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"gorm.io/gorm"
)

// MealDraft is a meal as the client sends it: everything by id, nothing
// resolved yet.
type MealDraft struct {
	UserID      uint            `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	EatenAt     time.Time       `json:"eaten_at"`
	Foods       []MealFoodInput `json:"foods"`
}

type MealFoodInput struct {
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
}

// Resolver materializes a draft's (food id, quantity) pairs into MealFood
// rows with the Food loaded. It validates existence only; it never writes.
type Resolver struct{ db *gorm.DB }

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{db: db} }

// Resolve checks that the draft's user exists and that every referenced food
// exists, stopping at the first missing food id. Quantity is taken as-is.
func (r *Resolver) Resolve(draft MealDraft) ([]models.MealFood, error) {
	var user models.User
	if err := r.db.First(&user, draft.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, draft.UserID)
		}
		return nil, err
	}

	rows := make([]models.MealFood, 0, len(draft.Foods))
	seen := make(map[uint]bool, len(draft.Foods))
	for _, in := range draft.Foods {
		if seen[in.FoodID] {
			return nil, fmt.Errorf("%w: food %d listed more than once", ErrValidation, in.FoodID)
		}
		seen[in.FoodID] = true

		var food models.Food
		if err := r.db.First(&food, in.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: food %d", ErrNotFound, in.FoodID)
			}
			return nil, err
		}
		rows = append(rows, models.MealFood{
			FoodID:   food.ID,
			Quantity: in.Quantity,
			Food:     &food,
		})
	}
	return rows, nil
}
