// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"ootd/internal/cache"
	"ootd/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	CountVisible(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
	HasReaction(ctx context.Context, userID, postID uint, kind string) (bool, error)
	AddReaction(ctx context.Context, userID, postID uint, kind string) error
	RemoveReaction(ctx context.Context, userID, postID uint, kind string) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeeds(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	if currentUserID == 0 {
		// Author must be filled before the fetched post is serialized,
		// since the raw User association never leaves the process.
		err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
			if err := r.applyPostDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				Preload("Outfit").
				First(&post, id).Error; err != nil {
				return err
			}
			post.Author = post.User.Summary()
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &post, nil
	}

	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Outfit").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	post.Author = post.User.Summary()
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Outfit").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	fillAuthors(posts)
	return posts, nil
}

// List returns visible posts newest first. Posts are visible unless they
// carry an explicit is_visible = false. Each page is cached per viewer;
// every write path that moves counters or membership calls InvalidateFeeds.
func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	key := cache.FeedKey(currentUserID, limit, offset)
	err := cache.Aside(ctx, key, &posts, cache.FeedTTL, func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Outfit").
			Where("is_visible = ?", true).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error; err != nil {
			return err
		}
		fillAuthors(posts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountVisible(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("is_visible = ?", true).
		Count(&count).Error
	return count, err
}

// applyPostDetails adds subqueries to fetch counts and the viewer's reaction
// state in a single query. Counters come straight from the reactions table,
// so removing the last reaction reads back as zero rather than going negative.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.kind = 'like') as like_count, " +
		"(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id AND reactions.kind = 'save') as save_count, " +
		"0 as comment_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ? AND reactions.kind = 'like') as liked"+
			", EXISTS(SELECT 1 FROM reactions WHERE reactions.post_id = posts.id AND reactions.user_id = ? AND reactions.kind = 'save') as saved",
			currentUserID, currentUserID)
	}

	return db.Select(selectQuery + ", false as liked, false as saved")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.PostKey(id))
	cache.InvalidateFeeds(ctx)
	return nil
}

func (r *postRepository) HasReaction(ctx context.Context, userID, postID uint, kind string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("user_id = ? AND post_id = ? AND kind = ?", userID, postID, kind).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) AddReaction(ctx context.Context, userID, postID uint, kind string) error {
	// Use INSERT ... ON CONFLICT DO NOTHING to handle race conditions.
	// Repeating an add is a no-op, never a duplicate key error.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO reactions (user_id, post_id, kind, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (post_id, user_id, kind) DO NOTHING`,
		userID, postID, kind, time.Now(),
	)
	if result.Error == nil {
		cache.Invalidate(ctx, cache.PostKey(postID))
		cache.InvalidateFeeds(ctx)
	}
	return result.Error
}

func (r *postRepository) RemoveReaction(ctx context.Context, userID, postID uint, kind string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ? AND kind = ?", userID, postID, kind).
		Delete(&models.Reaction{})
	if result.Error == nil {
		cache.Invalidate(ctx, cache.PostKey(postID))
		cache.InvalidateFeeds(ctx)
	}
	return result.Error
}

func fillAuthors(posts []*models.Post) {
	for _, p := range posts {
		p.Author = p.User.Summary()
	}
}
