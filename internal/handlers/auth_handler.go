package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/middleware"
	"github.com/stadtwache/stadtwache-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	user, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Detail: "Email already registered",
			})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Detail: verr.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Detail: "Internal server error",
			})
		}
	}

	return c.JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	token, user, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Detail: "Incorrect email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate credentials",
		})
	}
	return c.JSON(user)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Could not validate credentials",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	updated, err := h.authService.UpdateProfile(c.UserContext(), user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Detail: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.JSON(updated)
}
