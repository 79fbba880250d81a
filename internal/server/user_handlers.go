package server

import (
	"errors"

	"ootd/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCurrentUser handles GET /api/me
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	userID := currentUserID(c)
	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User", userID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(user)
}
