package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a newsletter recipient collected through the public site.
type Subscriber struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	Name         string         `gorm:"type:varchar(150)" json:"name" validate:"max=150"`
	SubscribedAt time.Time      `gorm:"autoCreateTime" json:"subscribedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Subscriber model
func (Subscriber) TableName() string {
	return "subscribers"
}
