package models

import (
	"time"
)

// User holds the account identity plus the body metrics the BMI
// engine works from. Height/weight stay nil until the user fills
// them in; BMI is undefined until both are set.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string   `gorm:"not null" json:"name"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}
