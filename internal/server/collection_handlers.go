package server

import (
	"ootd/internal/models"
	"ootd/internal/service"

	"github.com/gofiber/fiber/v2"
)

type collectionRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// GetCollections handles GET /api/collections
func (s *Server) GetCollections(c *fiber.Ctx) error {
	collections, err := s.collectionService.ListCollections(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collections)
}

// CreateCollection handles POST /api/collections
func (s *Server) CreateCollection(c *fiber.Ctx) error {
	var req collectionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	collection, err := s.collectionService.CreateCollection(c.Context(), service.CreateCollectionInput{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

// GetUpcomingCollections handles GET /api/collections/upcoming
func (s *Server) GetUpcomingCollections(c *fiber.Ctx) error {
	collections, err := s.collectionService.ListUpcoming(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collections)
}

// AddOutfitToCollection handles POST /api/collections/:id/outfits/:outfitId
func (s *Server) AddOutfitToCollection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	outfitID, err := s.parseID(c, "outfitId")
	if err != nil {
		return nil
	}

	collection, err := s.collectionService.AddOutfit(c.Context(), currentUserID(c), id, outfitID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collection)
}

// RemoveOutfitFromCollection handles DELETE /api/collections/:id/outfits/:outfitId
func (s *Server) RemoveOutfitFromCollection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	outfitID, err := s.parseID(c, "outfitId")
	if err != nil {
		return nil
	}

	collection, err := s.collectionService.RemoveOutfit(c.Context(), currentUserID(c), id, outfitID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collection)
}

// ArchiveCollection handles POST /api/collections/:id/archive
func (s *Server) ArchiveCollection(c *fiber.Ctx) error {
	return s.setCollectionArchived(c, true)
}

// RestoreCollection handles POST /api/collections/:id/restore
func (s *Server) RestoreCollection(c *fiber.Ctx) error {
	return s.setCollectionArchived(c, false)
}

func (s *Server) setCollectionArchived(c *fiber.Ctx, archived bool) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	collection, err := s.collectionService.SetArchived(c.Context(), currentUserID(c), id, archived)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collection)
}

// GetCollection handles GET /api/collections/:id
func (s *Server) GetCollection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	collection, err := s.collectionService.GetCollection(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collection)
}

// UpdateCollection handles PUT /api/collections/:id
func (s *Server) UpdateCollection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req collectionRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	collection, err := s.collectionService.UpdateCollection(c.Context(), service.UpdateCollectionInput{
		UserID:       currentUserID(c),
		CollectionID: id,
		Name:         req.Name,
		Description:  req.Description,
		Tags:         req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(collection)
}

// DeleteCollection handles DELETE /api/collections/:id
func (s *Server) DeleteCollection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.collectionService.DeleteCollection(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
