package repository

import (
	"context"

	"ootd/internal/models"

	"gorm.io/gorm"
)

// ClothingRepository defines the interface for closet data operations
type ClothingRepository interface {
	Create(ctx context.Context, item *models.ClothingItem) error
	GetByID(ctx context.Context, id uint) (*models.ClothingItem, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.ClothingItem, error)
	Update(ctx context.Context, item *models.ClothingItem) error
	Delete(ctx context.Context, id uint) error
}

type clothingRepository struct {
	db *gorm.DB
}

// NewClothingRepository creates a new clothing item repository
func NewClothingRepository(db *gorm.DB) ClothingRepository {
	return &clothingRepository{db: db}
}

func (r *clothingRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *clothingRepository) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	var item models.ClothingItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *clothingRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.ClothingItem, error) {
	var items []*models.ClothingItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *clothingRepository) Update(ctx context.Context, item *models.ClothingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *clothingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ClothingItem{}, id).Error
}
