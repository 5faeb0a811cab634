package models

// PostCategory is the join row between a post and a category. Both foreign
// keys cascade on delete of their parent.
type PostCategory struct {
	PostID     uint      `json:"postId" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint      `json:"categoryId" gorm:"primaryKey;autoIncrement:false"`
	Post       *Post     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Category   *Category `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}

type IDInput struct {
	ID uint `json:"id" binding:"required"`
}

type SlugInput struct {
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}

type CategoryFilter struct {
	CategoryID uint `json:"categoryId" binding:"required"`
}
