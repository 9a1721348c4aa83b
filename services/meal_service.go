package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"gorm.io/gorm"
)

type MealService struct {
	db       *gorm.DB
	resolver *Resolver
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db, resolver: NewResolver(db)}
}

// Create resolves the draft and writes the meal and its rows in one
// transaction, so a missing food leaves nothing behind.
func (s *MealService) Create(draft MealDraft) (*models.Meal, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	rows, err := s.resolver.Resolve(draft)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		Name:        draft.Name,
		Description: draft.Description,
		EatenAt:     draft.EatenAt,
		UserID:      draft.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Foods").Create(meal).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].MealID = meal.ID
			if err := tx.Omit("Food").Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(meal.ID)
}

func (s *MealService) Get(id uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Foods.Food").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: meal %d", ErrNotFound, id)
		}
		return nil, err
	}
	pruneDangling(&meal)
	return &meal, nil
}

// Delete removes the meal and all of its rows. No guard: rows never outlive
// their meal.
func (s *MealService) Delete(id uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: meal %d", ErrNotFound, id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

// ListForUser returns the user's meals with food data resolved. When filter
// is non-empty only meals whose name equals it case-insensitively are
// returned — an exact match, not a substring one. The query parameter is
// historically called "type" but has always matched the meal name.
func (s *MealService) ListForUser(userID uint, filter string) ([]models.Meal, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	var meals []models.Meal
	err := s.db.
		Preload("Foods.Food").
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	// Case folding happens here rather than in SQL: sqlite's LOWER() only
	// folds ASCII, so "CAFÉ" would miss "Café" depending on the backend.
	if filter != "" {
		matched := meals[:0]
		for _, m := range meals {
			if strings.EqualFold(m.Name, filter) {
				matched = append(matched, m)
			}
		}
		meals = matched
	}

	for i := range meals {
		pruneDangling(&meals[i])
	}
	return meals, nil
}

// pruneDangling drops rows whose food has been deleted since the meal was
// logged. Those rows contribute zero to every total and are never shown.
func pruneDangling(meal *models.Meal) {
	kept := meal.Foods[:0]
	for _, row := range meal.Foods {
		if row.Food != nil {
			kept = append(kept, row)
		}
	}
	meal.Foods = kept
}
