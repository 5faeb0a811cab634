package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-backend/db"
	"blog-backend/models"

	"gorm.io/gorm"
)

// categoryLink is one row of the categories ⋈ post_categories query.
type categoryLink struct {
	PostID      uint
	ID          uint
	Name        string
	Description *string
	Slug        string
	CreatedAt   time.Time
}

// attachCategories fills Categories on every post with its complete
// category set, using a single join query.
func attachCategories(tx *gorm.DB, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		posts[i].Categories = []models.Category{}
	}

	var links []categoryLink
	err := tx.Table("categories").
		Select("post_categories.post_id, categories.id, categories.name, categories.description, categories.slug, categories.created_at").
		Joins("JOIN post_categories ON post_categories.category_id = categories.id").
		Where("post_categories.post_id IN ?", ids).
		Order("categories.id").
		Scan(&links).Error
	if err != nil {
		return fmt.Errorf("fetch post categories: %w", err)
	}

	index := make(map[uint]int, len(posts))
	for i := range posts {
		index[posts[i].ID] = i
	}
	for _, link := range links {
		i, ok := index[link.PostID]
		if !ok {
			continue
		}
		posts[i].Categories = append(posts[i].Categories, models.Category{
			ID:          link.ID,
			Name:        link.Name,
			Description: link.Description,
			Slug:        link.Slug,
			CreatedAt:   link.CreatedAt,
		})
	}
	return nil
}

func FetchAllBlogs(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	tx := db.DB.WithContext(ctx)
	if err := tx.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	if err := attachCategories(tx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchBlogs returns the posts linked to categoryID. Each post still carries
// all of its categories, not only the filter one.
func FetchBlogs(ctx context.Context, categoryID uint) ([]models.Post, error) {
	posts := []models.Post{}
	tx := db.DB.WithContext(ctx)
	err := tx.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
		Where("post_categories.category_id = ?", categoryID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetch posts of category %d: %w", categoryID, err)
	}
	if err := attachCategories(tx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func FetchBlogByID(ctx context.Context, id uint) (*models.Post, error) {
	return firstPost(db.DB.WithContext(ctx), "posts.id = ?", id)
}

func FetchBlogBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return firstPost(db.DB.WithContext(ctx), "posts.slug = ?", slug)
}

// firstPost returns nil, nil when nothing matches.
func firstPost(tx *gorm.DB, query string, args ...interface{}) (*models.Post, error) {
	var post models.Post
	err := tx.Where(query, args...).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}

	posts := []models.Post{post}
	if err := attachCategories(tx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func insertLinks(tx *gorm.DB, postID uint, categoryIDs []uint) error {
	links := make([]models.PostCategory, 0, len(categoryIDs))
	seen := make(map[uint]struct{}, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		if _, dup := seen[categoryID]; dup {
			continue
		}
		seen[categoryID] = struct{}{}
		links = append(links, models.PostCategory{PostID: postID, CategoryID: categoryID})
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("link post %d to categories: %w", postID, err)
	}
	return nil
}

// CreateBlog inserts the post and its category links atomically. An unknown
// category id fails with gorm.ErrForeignKeyViolated and nothing is kept.
func CreateBlog(ctx context.Context, input models.PostCreate) (*models.Post, error) {
	post := models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Slug:      input.Slug,
		Published: input.Published,
	}

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		if err := insertLinks(tx, post.ID, input.CategoryIDs); err != nil {
			return err
		}
		posts := []models.Post{post}
		if err := attachCategories(tx, posts); err != nil {
			return err
		}
		post = posts[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateBlogWithCategories applies the supplied fields of input and, when
// input.CategoryIDs is non-nil, replaces the whole category set of the post
// (an empty list clears it). It returns nil, nil when the post does not exist.
func UpdateBlogWithCategories(ctx context.Context, id uint, input models.PostUpdate) (*models.Post, error) {
	var updated *models.Post

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := firstPost(tx, "posts.id = ?", id)
		if err != nil || current == nil {
			return err
		}
		if input.IsEmpty() {
			updated = current
			return nil
		}

		updates := map[string]interface{}{"updated_at": time.Now()}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Content != nil {
			updates["content"] = *input.Content
		}
		if input.Author != nil {
			updates["author"] = *input.Author
		}
		if input.Slug != nil {
			updates["slug"] = *input.Slug
		}
		if input.Published != nil {
			updates["published"] = *input.Published
		}

		err = tx.Model(&models.Post{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("update post %d: %w", id, err)
		}

		if input.CategoryIDs != nil {
			if err := tx.Exec("DELETE FROM post_categories WHERE post_id = ?", id).Error; err != nil {
				return fmt.Errorf("clear categories of post %d: %w", id, err)
			}
			if err := insertLinks(tx, id, *input.CategoryIDs); err != nil {
				return err
			}
		}

		updated, err = firstPost(tx, "posts.id = ?", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBlog removes the post and its category links in one transaction.
func DeleteBlog(ctx context.Context, id uint) error {
	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_categories WHERE post_id = ?", id).Error; err != nil {
			return fmt.Errorf("remove categories of post %d: %w", id, err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return fmt.Errorf("delete post %d: %w", id, err)
		}
		return nil
	})
}
