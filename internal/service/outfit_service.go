// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"time"

	"ootd/internal/models"
	"ootd/internal/observability"
	"ootd/internal/recommend"
	"ootd/internal/repository"
	"ootd/internal/weather"
)

type OutfitService struct {
	outfitRepo repository.OutfitRepository
	weather    weather.Provider
}

type CreateOutfitInput struct {
	UserID         uint
	Name           string
	Rating         *int
	EventType      string
	Mood           string
	WeatherSummary string
	ItemIDs        []uint
}

type UpdateOutfitInput struct {
	UserID         uint
	OutfitID       uint
	Name           string
	Rating         *int
	EventType      string
	Mood           string
	WeatherSummary string
}

func NewOutfitService(outfitRepo repository.OutfitRepository, weatherProvider weather.Provider) *OutfitService {
	return &OutfitService{
		outfitRepo: outfitRepo,
		weather:    weatherProvider,
	}
}

func (s *OutfitService) CreateOutfit(ctx context.Context, in CreateOutfitInput) (*models.Outfit, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	outfit := &models.Outfit{
		UserID:         in.UserID,
		Name:           in.Name,
		Rating:         in.Rating,
		EventType:      in.EventType,
		Mood:           in.Mood,
		WeatherSummary: in.WeatherSummary,
	}
	for i, itemID := range in.ItemIDs {
		outfit.Items = append(outfit.Items, models.OutfitItem{ItemID: itemID, Position: i})
	}

	if err := s.outfitRepo.Create(ctx, outfit); err != nil {
		return nil, err
	}
	return s.outfitRepo.GetByID(ctx, outfit.ID)
}

func (s *OutfitService) GetOutfit(ctx context.Context, userID, outfitID uint) (*models.Outfit, error) {
	outfit, err := s.outfitRepo.GetByID(ctx, outfitID)
	if err != nil {
		return nil, models.NewNotFoundError("Outfit", outfitID)
	}
	if outfit.UserID != userID {
		return nil, models.NewNotFoundError("Outfit", outfitID)
	}
	return outfit, nil
}

func (s *OutfitService) ListOutfits(ctx context.Context, userID uint) ([]*models.Outfit, error) {
	return s.outfitRepo.ListByUser(ctx, userID)
}

func (s *OutfitService) UpdateOutfit(ctx context.Context, in UpdateOutfitInput) (*models.Outfit, error) {
	outfit, err := s.GetOutfit(ctx, in.UserID, in.OutfitID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	outfit.Name = in.Name
	outfit.Rating = in.Rating
	outfit.EventType = in.EventType
	outfit.Mood = in.Mood
	outfit.WeatherSummary = in.WeatherSummary

	if err := s.outfitRepo.Update(ctx, outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

func (s *OutfitService) DeleteOutfit(ctx context.Context, userID, outfitID uint) error {
	if _, err := s.GetOutfit(ctx, userID, outfitID); err != nil {
		return err
	}
	return s.outfitRepo.Delete(ctx, outfitID)
}

// ToggleFavorite flips the outfit's favorite flag and returns the updated
// outfit. Favorites directly affect today's picks scoring.
func (s *OutfitService) ToggleFavorite(ctx context.Context, userID, outfitID uint) (*models.Outfit, error) {
	outfit, err := s.GetOutfit(ctx, userID, outfitID)
	if err != nil {
		return nil, err
	}
	if err := s.outfitRepo.SetFavorite(ctx, userID, outfitID, !outfit.IsFavorite); err != nil {
		return nil, err
	}
	outfit.IsFavorite = !outfit.IsFavorite
	return outfit, nil
}

// MarkWorn stamps the outfit as worn now.
func (s *OutfitService) MarkWorn(ctx context.Context, userID, outfitID uint) (*models.Outfit, error) {
	outfit, err := s.GetOutfit(ctx, userID, outfitID)
	if err != nil {
		return nil, err
	}
	wornAt := time.Now()
	if err := s.outfitRepo.SetLastWorn(ctx, userID, outfitID, wornAt); err != nil {
		return nil, err
	}
	outfit.LastWornAt = &wornAt
	return outfit, nil
}

// TodaysPicks ranks the user's wardrobe against current conditions and
// returns at most five outfits, best match first. A weather lookup
// failure falls back to a mild default rather than failing the request.
func (s *OutfitService) TodaysPicks(ctx context.Context, userID uint) ([]*models.Outfit, error) {
	start := time.Now()
	defer observability.ObserveRanking("todays_picks", start)

	outfits, err := s.outfitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	targetF := weather.TemperatureOrDefault(ctx, s.weather)
	return recommend.TodaysPicks(outfits, targetF), nil
}

// MostWorn returns the user's longest-standing outfits, oldest first,
// capped at five.
func (s *OutfitService) MostWorn(ctx context.Context, userID uint) ([]*models.Outfit, error) {
	start := time.Now()
	defer observability.ObserveRanking("most_worn", start)

	outfits, err := s.outfitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.MostWorn(outfits), nil
}
