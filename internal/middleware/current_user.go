package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"github.com/stadtwache/stadtwache-backend/internal/services"
)

const currentUserKey = "current_user"

// CurrentUser resolves the claims left in context by JWTProtected into
// a stored user. Identity-resolution failures return the same 401 body
// as token failures, so callers cannot tell which check failed.
func CurrentUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c)
		}
		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}

		user, err := authService.ResolveUser(c.UserContext(), services.ClaimsFromMap(mapClaims))
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// UserFromContext returns the user resolved by CurrentUser.
func UserFromContext(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	return user, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Detail: "Could not validate credentials",
	})
}
