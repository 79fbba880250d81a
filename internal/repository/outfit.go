package repository

import (
	"context"
	"time"

	"ootd/internal/cache"
	"ootd/internal/models"

	"gorm.io/gorm"
)

// OutfitRepository defines the interface for outfit data operations
type OutfitRepository interface {
	Create(ctx context.Context, outfit *models.Outfit) error
	GetByID(ctx context.Context, id uint) (*models.Outfit, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Outfit, error)
	Update(ctx context.Context, outfit *models.Outfit) error
	Delete(ctx context.Context, id uint) error
	SetFavorite(ctx context.Context, userID, id uint, favorite bool) error
	SetLastWorn(ctx context.Context, userID, id uint, wornAt time.Time) error
}

type outfitRepository struct {
	db *gorm.DB
}

// NewOutfitRepository creates a new outfit repository
func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepository{db: db}
}

func (r *outfitRepository) Create(ctx context.Context, outfit *models.Outfit) error {
	err := r.db.WithContext(ctx).Create(outfit).Error
	if err == nil {
		cache.InvalidateOutfitList(ctx, outfit.UserID)
	}
	return err
}

func (r *outfitRepository) GetByID(ctx context.Context, id uint) (*models.Outfit, error) {
	var outfit models.Outfit
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("outfit_items.position ASC")
		}).
		Preload("Items.Item").
		First(&outfit, id).Error
	if err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (r *outfitRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Outfit, error) {
	var outfits []*models.Outfit
	key := cache.OutfitListKey(userID)
	err := cache.Aside(ctx, key, &outfits, cache.OutfitListTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("outfit_items.position ASC")
			}).
			Preload("Items.Item").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&outfits).Error
	})
	return outfits, err
}

func (r *outfitRepository) Update(ctx context.Context, outfit *models.Outfit) error {
	if err := r.db.WithContext(ctx).Save(outfit).Error; err != nil {
		return err
	}
	cache.InvalidateOutfitList(ctx, outfit.UserID)
	return nil
}

func (r *outfitRepository) Delete(ctx context.Context, id uint) error {
	outfit, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Outfit{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateOutfitList(ctx, outfit.UserID)
	return nil
}

// SetFavorite flips the favorite flag via a single targeted update so a
// stale snapshot held by the caller cannot clobber other columns. The
// update is scoped to the owning user, and the user's cached outfit list
// is dropped so the next ranking sees the new flag.
func (r *outfitRepository) SetFavorite(ctx context.Context, userID, id uint, favorite bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Outfit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_favorite", favorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateOutfitList(ctx, userID)
	return nil
}

func (r *outfitRepository) SetLastWorn(ctx context.Context, userID, id uint, wornAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Outfit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("last_worn_at", wornAt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateOutfitList(ctx, userID)
	return nil
}
