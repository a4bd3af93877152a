package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/middleware"
	"github.com/stadtwache/stadtwache-backend/internal/services"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// ByStatus returns every user grouped by operational status. The caller
// must be authenticated but the result is not filtered by caller.
func (h *RosterHandler) ByStatus(c *fiber.Ctx) error {
	if _, ok := middleware.UserFromContext(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate credentials",
		})
	}

	roster, err := h.rosterService.ListByStatus(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Failed to fetch users",
		})
	}

	return c.JSON(roster)
}
