package middleware

import (
	"github.com/stadtwache/stadtwache-backend/internal/config"
	"github.com/stadtwache/stadtwache-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected rejects requests without a valid bearer token. Missing,
// malformed, badly signed and expired tokens all get the same body.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "Could not validate credentials",
			})
		},
	})
}
