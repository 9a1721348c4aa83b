package models

import (
    "time"

    "gorm.io/gorm"
)

// One recorded eating event. Only the calendar date of EatenAt matters to
// the calorie reports; time-of-day is stored but ignored.
type Meal struct {
    gorm.Model
    Name        string     `gorm:"not null" json:"name"`
    Description string     `json:"description"`
    EatenAt     time.Time  `json:"eaten_at"`
    UserID      uint       `gorm:"index;not null" json:"user_id"` // FK → users.id, no back-reference object
    Foods       []MealFood `gorm:"foreignKey:MealID" json:"foods"`
}

// MealFood joins a Meal to a Food with the consumed Quantity, expressed in
// the food's Unit. One row per (meal, food) pair.
//
// Food is populated when the row is resolved; a nil Food must never reach
// the calorie engine.
type MealFood struct {
    MealID   uint    `gorm:"primaryKey" json:"meal_id"`
    FoodID   uint    `gorm:"primaryKey" json:"food_id"`
    Quantity float64 `json:"quantity"`
    Food     *Food   `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}
