package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/stadtwache/stadtwache-backend/internal/config"
	"github.com/stadtwache/stadtwache-backend/internal/handlers"
	"github.com/stadtwache/stadtwache-backend/internal/middleware"
	"github.com/stadtwache/stadtwache-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	reportHandler *handlers.ReportHandler,
	broadcastHandler *handlers.BroadcastHandler,
	rosterHandler *handlers.RosterHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/", healthHandler.Root)
	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit: 10 req/min per IP. The
	// limiter is attached per route so /auth/me and /auth/profile, which
	// clients poll, stay on the general limit.
	credentialLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	auth := api.Group("/auth")
	auth.Post("/register", credentialLimiter, authHandler.Register)
	auth.Post("/login", credentialLimiter, authHandler.Login)

	// Every protected route runs the token guard, then resolves the
	// caller to a stored user.
	guard := middleware.JWTProtected(cfg)
	identify := middleware.CurrentUser(authService)

	api.Get("/auth/me", guard, identify, authHandler.Me)
	api.Put("/auth/profile", guard, identify, authHandler.UpdateProfile)

	api.Post("/reports", guard, identify, reportHandler.Create)
	api.Put("/reports/:id", guard, identify, reportHandler.Update)
	api.Get("/reports", guard, identify, reportHandler.List)

	api.Post("/emergency/broadcast", guard, identify, broadcastHandler.Broadcast)

	api.Get("/users/by-status", guard, identify, rosterHandler.ByStatus)
}
