package server

import (
	"ootd/internal/models"
	"ootd/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	feed, err := s.feedService.ListFeed(c.Context(), service.ListFeedInput{
		Limit:         page.Limit,
		Offset:        page.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		OutfitID uint     `json:"outfit_id"`
		Caption  string   `json:"caption"`
		CityName string   `json:"city_name"`
		Tags     []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.feedService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   currentUserID(c),
		OutfitID: req.OutfitID,
		Caption:  req.Caption,
		CityName: req.CityName,
		Tags:     req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.feedService.GetPost(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// ToggleReaction handles POST /api/posts/:id/reactions/:kind
func (s *Server) ToggleReaction(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.feedService.ToggleReaction(c.Context(), service.ToggleReactionInput{
		UserID: currentUserID(c),
		PostID: id,
		Kind:   c.Params("kind"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.feedService.DeletePost(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
