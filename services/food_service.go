package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodInput struct {
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	Unit               string  `json:"unit"`
	CaloriesPerPortion float64 `json:"calories_per_portion"`
}

func (in FoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.CaloriesPerPortion <= 0 {
		return fmt.Errorf("%w: calories per portion must be greater than zero", ErrValidation)
	}
	return nil
}

func (s *FoodService) Create(in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := &models.Food{
		Name:               in.Name,
		Type:               in.Type,
		Unit:               in.Unit,
		CaloriesPerPortion: in.CaloriesPerPortion,
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Update(id uint, in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	food, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	food.Name = in.Name
	food.Type = in.Type
	food.Unit = in.Unit
	food.CaloriesPerPortion = in.CaloriesPerPortion

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Delete is unconditional: meal rows referencing the food keep their ids
// and are pruned when the owning meal is read back.
func (s *FoodService) Delete(id uint) error {
	food, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(food).Error
}
