package store

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/db"
	"blog-backend/models"

	"gorm.io/gorm"
)

func FetchCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := db.DB.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}

// FetchCategoryByID returns nil, nil when no category has this id.
func FetchCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return firstCategory(db.DB.WithContext(ctx).Where("id = ?", id))
}

func FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return firstCategory(db.DB.WithContext(ctx).Where("slug = ?", slug))
}

func firstCategory(query *gorm.DB) (*models.Category, error) {
	var category models.Category
	err := query.First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch category: %w", err)
	}
	return &category, nil
}

// CreateCategory inserts one row. A reused slug comes back as
// gorm.ErrDuplicatedKey.
func CreateCategory(ctx context.Context, input models.CategoryCreate) (*models.Category, error) {
	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
	}
	if err := db.DB.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory applies the non-nil fields of input. It returns nil, nil
// when the category does not exist.
func UpdateCategory(ctx context.Context, id uint, input models.CategoryUpdate) (*models.Category, error) {
	category, err := FetchCategoryByID(ctx, id)
	if err != nil || category == nil {
		return category, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
		category.Name = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
		category.Description = input.Description
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
		category.Slug = *input.Slug
	}
	if len(updates) == 0 {
		return category, nil
	}

	err = db.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return category, nil
}

// DeleteCategory removes the category and its links in one transaction.
// Posts that were linked to it are kept.
func DeleteCategory(ctx context.Context, id uint) error {
	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_categories WHERE category_id = ?", id).Error; err != nil {
			return fmt.Errorf("remove category %d from posts: %w", id, err)
		}
		if err := tx.Delete(&models.Category{}, id).Error; err != nil {
			return fmt.Errorf("delete category %d: %w", id, err)
		}
		return nil
	})
}
