package models

import (
	"time"
)

// Car references exactly one Make, Model and Category. ObjectID is the
// short public identifier, distinct from the numeric primary key.
type Car struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MakeID     uint      `json:"make_id" gorm:"not null;index"`
	ModelID    uint      `json:"model_id" gorm:"not null;index"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Year       int       `json:"year" gorm:"not null"`
	ObjectID   string    `json:"object_id" gorm:"not null;uniqueIndex;size:11"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Make     Make     `json:"make" gorm:"foreignKey:MakeID"`
	Model    Model    `json:"model" gorm:"foreignKey:ModelID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
}
