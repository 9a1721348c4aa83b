package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Name      string  `gorm:"not null" json:"name"`
    Email     string  `gorm:"uniqueIndex;not null" json:"email"`
    Height    float64 `json:"height"` // centimeters
    Weight    float64 `json:"weight"` // kilograms
    Objective string  `json:"objective"`
    Meals     []Meal  `json:"meals,omitempty"`
}
