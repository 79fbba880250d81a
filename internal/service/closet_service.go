package service

import (
	"context"

	"ootd/internal/models"
	"ootd/internal/repository"
)

type ClosetService struct {
	clothingRepo repository.ClothingRepository
}

type CreateItemInput struct {
	UserID          uint
	Name            string
	Category        string
	Color           string
	Season          string
	WarmthLevel     int
	Formality       string
	Tags            []string
	PrimaryImageURL string
}

type UpdateItemInput struct {
	UserID uint
	ItemID uint
	CreateItemInput
}

func NewClosetService(clothingRepo repository.ClothingRepository) *ClosetService {
	return &ClosetService{clothingRepo: clothingRepo}
}

func (s *ClosetService) CreateItem(ctx context.Context, in CreateItemInput) (*models.ClothingItem, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	category := in.Category
	if category == "" {
		category = models.CategoryOther
	}
	if !models.ValidCategory(category) {
		return nil, models.NewValidationError("Invalid category")
	}
	if in.WarmthLevel < 0 || in.WarmthLevel > 5 {
		return nil, models.NewValidationError("Warmth level must be between 1 and 5")
	}

	item := &models.ClothingItem{
		UserID:          in.UserID,
		Name:            in.Name,
		Category:        category,
		Color:           in.Color,
		Season:          in.Season,
		WarmthLevel:     in.WarmthLevel,
		Formality:       in.Formality,
		Tags:            in.Tags,
		PrimaryImageURL: in.PrimaryImageURL,
	}
	if err := s.clothingRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ClosetService) GetItem(ctx context.Context, userID, itemID uint) (*models.ClothingItem, error) {
	item, err := s.clothingRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, models.NewNotFoundError("Clothing item", itemID)
	}
	if item.UserID != userID {
		return nil, models.NewNotFoundError("Clothing item", itemID)
	}
	return item, nil
}

func (s *ClosetService) ListItems(ctx context.Context, userID uint, limit, offset int) ([]*models.ClothingItem, error) {
	return s.clothingRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *ClosetService) UpdateItem(ctx context.Context, in UpdateItemInput) (*models.ClothingItem, error) {
	item, err := s.GetItem(ctx, in.UserID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Category != "" && !models.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}

	item.Name = in.Name
	if in.Category != "" {
		item.Category = in.Category
	}
	item.Color = in.Color
	item.Season = in.Season
	item.WarmthLevel = in.WarmthLevel
	item.Formality = in.Formality
	item.Tags = in.Tags
	item.PrimaryImageURL = in.PrimaryImageURL

	if err := s.clothingRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ClosetService) DeleteItem(ctx context.Context, userID, itemID uint) error {
	if _, err := s.GetItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.clothingRepo.Delete(ctx, itemID)
}
