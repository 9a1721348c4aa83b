package models

import "gorm.io/gorm"

// A catalog entry; CaloriesPerPortion is kcal per 100 units of Unit.
type Food struct {
    gorm.Model
    Name               string  `gorm:"not null" json:"name"`
    Type               string  `json:"type"` // "fruit" | "grain" | …
    Unit               string  `json:"unit"` // e.g. "g", "ml"
    CaloriesPerPortion float64 `json:"calories_per_portion"`
}
