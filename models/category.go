package models

import (
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`
}

type CategoryCreate struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description"`
	Slug        string  `json:"slug" binding:"required,min=1,max=255"`
}

// CategoryUpdate only carries the fields the caller wants to change.
type CategoryUpdate struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=255"`
}

func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Slug == nil
}

func (Category) TableName() string {
	return "categories"
}
