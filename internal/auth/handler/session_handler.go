package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/ratelimit"
)

func (h *AuthHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.sessionService.ListActive(c.UserContext(), CallerIdentity(c),
		ratelimit.ClientIP(c), string(c.Request().Header.UserAgent()))
	if err != nil {
		log.Printf("sessions list error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch sessions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sessions": sessions,
	})
}

func (h *AuthHandler) TerminateSession(c *fiber.Ctx) error {
	var input dto.TerminateSessionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session ID is required",
		})
	}

	err := h.sessionService.Terminate(c.UserContext(), input, CallerIdentity(c),
		ratelimit.ClientIP(c), string(c.Request().Header.UserAgent()))
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		case errors.Is(err, autherror.ErrSessionAlreadyTerminated):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Session is already terminated",
			})
		default:
			log.Printf("session termination error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to terminate session",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Session terminated successfully",
	})
}
