package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type UserInput struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Objective string  `json:"objective"`
}

func (in UserInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if in.Height <= 0 {
		return fmt.Errorf("%w: height must be greater than zero", ErrValidation)
	}
	if in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be greater than zero", ErrValidation)
	}
	if strings.TrimSpace(in.Objective) == "" {
		return fmt.Errorf("%w: objective is required", ErrValidation)
	}
	return nil
}

func (s *UserService) Create(in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Height:    in.Height,
		Weight:    in.Weight,
		Objective: in.Objective,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Find(&users).Error
	return users, err
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// Update replaces every mutable field of the user; the id never changes.
func (s *UserService) Update(id uint, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Height = in.Height
	user.Weight = in.Weight
	user.Objective = in.Objective

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// Delete refuses to remove a user that still owns meals; the caller must
// delete the meals first. The row is removed for real, not soft-deleted,
// so the email can be registered again.
func (s *UserService) Delete(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	var meals int64
	if err := s.db.Model(&models.Meal{}).Where("user_id = ?", id).Count(&meals).Error; err != nil {
		return err
	}
	if meals > 0 {
		return fmt.Errorf("%w: user has registered meals", ErrConflict)
	}

	return s.db.Unscoped().Delete(user).Error
}
