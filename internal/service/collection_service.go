package service

import (
	"context"

	"ootd/internal/models"
	"ootd/internal/recommend"
	"ootd/internal/repository"
)

type CollectionService struct {
	collectionRepo repository.CollectionRepository
	outfitRepo     repository.OutfitRepository
}

type CreateCollectionInput struct {
	UserID      uint
	Name        string
	Description string
	Tags        []string
}

type UpdateCollectionInput struct {
	UserID       uint
	CollectionID uint
	Name         string
	Description  string
	Tags         []string
}

func NewCollectionService(collectionRepo repository.CollectionRepository, outfitRepo repository.OutfitRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		outfitRepo:     outfitRepo,
	}
}

func (s *CollectionService) CreateCollection(ctx context.Context, in CreateCollectionInput) (*models.Collection, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	collection := &models.Collection{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Tags:        in.Tags,
	}
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) GetCollection(ctx context.Context, userID, collectionID uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return nil, models.NewNotFoundError("Collection", collectionID)
	}
	if collection.UserID != userID {
		return nil, models.NewNotFoundError("Collection", collectionID)
	}
	return collection, nil
}

func (s *CollectionService) ListCollections(ctx context.Context, userID uint) ([]*models.Collection, error) {
	return s.collectionRepo.ListByUser(ctx, userID)
}

// ListUpcoming returns the user's collections tagged for travel, holidays
// or events, in their stored order. Archived collections stay eligible.
func (s *CollectionService) ListUpcoming(ctx context.Context, userID uint) ([]*models.Collection, error) {
	collections, err := s.collectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.UpcomingEventCollections(collections), nil
}

func (s *CollectionService) UpdateCollection(ctx context.Context, in UpdateCollectionInput) (*models.Collection, error) {
	collection, err := s.GetCollection(ctx, in.UserID, in.CollectionID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	collection.Name = in.Name
	collection.Description = in.Description
	collection.Tags = in.Tags

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (s *CollectionService) DeleteCollection(ctx context.Context, userID, collectionID uint) error {
	if _, err := s.GetCollection(ctx, userID, collectionID); err != nil {
		return err
	}
	return s.collectionRepo.Delete(ctx, collectionID)
}

// AddOutfit links an outfit into a collection. The outfit must exist in
// the user's wardrobe; a dangling reference is a not-found error, not a
// silent no-op.
func (s *CollectionService) AddOutfit(ctx context.Context, userID, collectionID, outfitID uint) (*models.Collection, error) {
	if _, err := s.GetCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	outfit, err := s.outfitRepo.GetByID(ctx, outfitID)
	if err != nil || outfit.UserID != userID {
		return nil, models.NewNotFoundError("Outfit", outfitID)
	}
	if err := s.collectionRepo.AddOutfit(ctx, collectionID, outfitID); err != nil {
		return nil, err
	}
	return s.collectionRepo.GetByID(ctx, collectionID)
}

func (s *CollectionService) RemoveOutfit(ctx context.Context, userID, collectionID, outfitID uint) (*models.Collection, error) {
	if _, err := s.GetCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	if err := s.collectionRepo.RemoveOutfit(ctx, collectionID, outfitID); err != nil {
		return nil, err
	}
	return s.collectionRepo.GetByID(ctx, collectionID)
}

// SetArchived archives or restores a collection without touching its
// outfit memberships or tags.
func (s *CollectionService) SetArchived(ctx context.Context, userID, collectionID uint, archived bool) (*models.Collection, error) {
	if _, err := s.GetCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	if err := s.collectionRepo.SetArchived(ctx, userID, collectionID, archived); err != nil {
		return nil, err
	}
	return s.collectionRepo.GetByID(ctx, collectionID)
}
