package server

import (
	"ootd/internal/models"
	"ootd/internal/service"

	"github.com/gofiber/fiber/v2"
)

type itemRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Color           string   `json:"color"`
	Season          string   `json:"season"`
	WarmthLevel     int      `json:"warmth_level"`
	Formality       string   `json:"formality"`
	Tags            []string `json:"tags"`
	PrimaryImageURL string   `json:"primary_image_url"`
}

// GetItems handles GET /api/items
func (s *Server) GetItems(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	items, err := s.closetService.ListItems(c.Context(), currentUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// CreateItem handles POST /api/items
func (s *Server) CreateItem(c *fiber.Ctx) error {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.closetService.CreateItem(c.Context(), service.CreateItemInput{
		UserID:          currentUserID(c),
		Name:            req.Name,
		Category:        req.Category,
		Color:           req.Color,
		Season:          req.Season,
		WarmthLevel:     req.WarmthLevel,
		Formality:       req.Formality,
		Tags:            req.Tags,
		PrimaryImageURL: req.PrimaryImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem handles GET /api/items/:id
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	item, err := s.closetService.GetItem(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}

// UpdateItem handles PUT /api/items/:id
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.closetService.UpdateItem(c.Context(), service.UpdateItemInput{
		UserID: currentUserID(c),
		ItemID: id,
		CreateItemInput: service.CreateItemInput{
			Name:            req.Name,
			Category:        req.Category,
			Color:           req.Color,
			Season:          req.Season,
			WarmthLevel:     req.WarmthLevel,
			Formality:       req.Formality,
			Tags:            req.Tags,
			PrimaryImageURL: req.PrimaryImageURL,
		},
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.closetService.DeleteItem(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
