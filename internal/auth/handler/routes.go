package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/ratelimit"
)

// RegisterRoutes mounts the admin auth surface. The rate limiter runs ahead
// of everything under /api, before any guard.
func RegisterRoutes(app *fiber.App, h *AuthHandler, limiter *ratelimit.Limiter) {
	api := app.Group("/api", limiter.Middleware())

	admin := api.Group("/admin")
	admin.Post("/login", h.Login)
	admin.Post("/verify-2fa", h.VerifyTwoFactor)
	admin.Post("/refresh", h.Refresh)
	admin.Post("/logout", h.Logout)

	// Admin-or-above endpoints
	admin.Get("/sessions", h.RequireRole(domain.RoleAdmin), h.ListSessions)
	admin.Post("/session-terminate", h.RequireRole(domain.RoleAdmin), h.TerminateSession)
}
