package server

import (
	"ootd/internal/models"
	"ootd/internal/service"

	"github.com/gofiber/fiber/v2"
)

type outfitRequest struct {
	Name           string `json:"name"`
	Rating         *int   `json:"rating"`
	EventType      string `json:"event_type"`
	Mood           string `json:"mood"`
	WeatherSummary string `json:"weather_summary"`
	ItemIDs        []uint `json:"item_ids"`
}

// GetOutfits handles GET /api/outfits
func (s *Server) GetOutfits(c *fiber.Ctx) error {
	outfits, err := s.outfitService.ListOutfits(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfits)
}

// CreateOutfit handles POST /api/outfits
func (s *Server) CreateOutfit(c *fiber.Ctx) error {
	var req outfitRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	outfit, err := s.outfitService.CreateOutfit(c.Context(), service.CreateOutfitInput{
		UserID:         currentUserID(c),
		Name:           req.Name,
		Rating:         req.Rating,
		EventType:      req.EventType,
		Mood:           req.Mood,
		WeatherSummary: req.WeatherSummary,
		ItemIDs:        req.ItemIDs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(outfit)
}

// GetTodaysPicks handles GET /api/outfits/picks/today
func (s *Server) GetTodaysPicks(c *fiber.Ctx) error {
	picks, err := s.outfitService.TodaysPicks(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(picks)
}

// GetMostWorn handles GET /api/outfits/picks/most-worn
func (s *Server) GetMostWorn(c *fiber.Ctx) error {
	outfits, err := s.outfitService.MostWorn(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfits)
}

// ToggleFavorite handles POST /api/outfits/:id/favorite
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	outfit, err := s.outfitService.ToggleFavorite(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfit)
}

// MarkWorn handles POST /api/outfits/:id/wear
func (s *Server) MarkWorn(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	outfit, err := s.outfitService.MarkWorn(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfit)
}

// GetOutfit handles GET /api/outfits/:id
func (s *Server) GetOutfit(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	outfit, err := s.outfitService.GetOutfit(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfit)
}

// UpdateOutfit handles PUT /api/outfits/:id
func (s *Server) UpdateOutfit(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req outfitRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	outfit, err := s.outfitService.UpdateOutfit(c.Context(), service.UpdateOutfitInput{
		UserID:         currentUserID(c),
		OutfitID:       id,
		Name:           req.Name,
		Rating:         req.Rating,
		EventType:      req.EventType,
		Mood:           req.Mood,
		WeatherSummary: req.WeatherSummary,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(outfit)
}

// DeleteOutfit handles DELETE /api/outfits/:id
func (s *Server) DeleteOutfit(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.outfitService.DeleteOutfit(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
