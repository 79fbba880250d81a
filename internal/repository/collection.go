package repository

import (
	"context"

	"ootd/internal/cache"
	"ootd/internal/models"

	"gorm.io/gorm"
)

// CollectionRepository defines the interface for collection data operations
type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id uint) (*models.Collection, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id uint) error
	AddOutfit(ctx context.Context, collectionID, outfitID uint) error
	RemoveOutfit(ctx context.Context, collectionID, outfitID uint) error
	SetArchived(ctx context.Context, userID, id uint, archived bool) error
}

type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	err := r.db.WithContext(ctx).Create(collection).Error
	if err == nil {
		cache.InvalidateCollectionList(ctx, collection.UserID)
	}
	return err
}

func (r *collectionRepository) GetByID(ctx context.Context, id uint) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).
		Preload("Outfits").
		First(&collection, id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

// ListByUser returns the user's collections in creation order. Upcoming
// filtering happens in the service layer so archived collections stay
// visible here.
func (r *collectionRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Collection, error) {
	var collections []*models.Collection
	key := cache.CollectionListKey(userID)
	err := cache.Aside(ctx, key, &collections, cache.CollectionTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Outfits").
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&collections).Error
	})
	return collections, err
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	if err := r.db.WithContext(ctx).Save(collection).Error; err != nil {
		return err
	}
	cache.InvalidateCollectionList(ctx, collection.UserID)
	return nil
}

func (r *collectionRepository) Delete(ctx context.Context, id uint) error {
	collection, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Select("Outfits").Delete(collection).Error; err != nil {
		return err
	}
	cache.InvalidateCollectionList(ctx, collection.UserID)
	return nil
}

func (r *collectionRepository) AddOutfit(ctx context.Context, collectionID, outfitID uint) error {
	collection, err := r.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	outfit := models.Outfit{ID: outfitID}
	if err := r.db.WithContext(ctx).Model(collection).Association("Outfits").Append(&outfit); err != nil {
		return err
	}
	cache.InvalidateCollectionList(ctx, collection.UserID)
	return nil
}

func (r *collectionRepository) RemoveOutfit(ctx context.Context, collectionID, outfitID uint) error {
	collection, err := r.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	outfit := models.Outfit{ID: outfitID}
	if err := r.db.WithContext(ctx).Model(collection).Association("Outfits").Delete(&outfit); err != nil {
		return err
	}
	cache.InvalidateCollectionList(ctx, collection.UserID)
	return nil
}

// SetArchived flips the archived flag with a targeted update scoped to
// the owning user, then drops the user's cached collection list so the
// flag change is visible on the next read.
func (r *collectionRepository) SetArchived(ctx context.Context, userID, id uint, archived bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_archived", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateCollectionList(ctx, userID)
	return nil
}
