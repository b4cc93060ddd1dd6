package models

import (
	"time"
)

// Meal is one logged food entry. Ownership is fixed at creation and
// meals are never edited afterwards; the only mutations are create
// and owner-scoped delete.
type Meal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID   uint      `gorm:"index;not null" json:"userId"`
	Name     string    `gorm:"not null" json:"name"`
	Calories int       `gorm:"not null" json:"calories"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Notes    string    `json:"notes,omitempty"`
}
