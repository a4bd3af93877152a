package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/middleware"
	"github.com/stadtwache/stadtwache-backend/internal/services"
)

type BroadcastHandler struct {
	broadcastService *services.BroadcastService
}

func NewBroadcastHandler(broadcastService *services.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{broadcastService: broadcastService}
}

func (h *BroadcastHandler) Broadcast(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate credentials",
		})
	}

	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	receipt, err := h.broadcastService.Broadcast(c.UserContext(), user, &req)
	if err != nil {
		// The only failure that reaches the caller: the store rejected
		// the write.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Failed to create emergency broadcast",
		})
	}

	return c.JSON(receipt)
}
