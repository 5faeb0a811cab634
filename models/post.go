package models

import (
	"time"
)

type Post struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Title      string     `json:"title" gorm:"type:varchar(255);not null"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	Author     string     `json:"author" gorm:"type:varchar(255);not null"`
	Slug       string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Published  bool       `json:"published" gorm:"not null;default:false"`
	Categories []Category `json:"categories" gorm:"-"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"not null"`
}

type PostCreate struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Content     string `json:"content" binding:"required,min=1"`
	Author      string `json:"author" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Published   bool   `json:"published"`
	CategoryIDs []uint `json:"categoryIds" binding:"required,min=1,dive,gt=0"`
}

// PostUpdate distinguishes an omitted categoryIds (nil, links untouched)
// from an explicit empty list (links cleared).
type PostUpdate struct {
	ID          uint    `json:"id" binding:"required"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Author      *string `json:"author" binding:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=255"`
	Published   *bool   `json:"published"`
	CategoryIDs *[]uint `json:"categoryIds" binding:"omitempty,dive,gt=0"`
}

func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Author == nil &&
		u.Slug == nil && u.Published == nil && u.CategoryIDs == nil
}

func (Post) TableName() string {
	return "posts"
}
