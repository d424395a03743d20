package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/service"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/ratelimit"
)

const (
	SessionCookieName = "admin_auth_token"
	RefreshCookieName = "admin_refresh_token"
)

type AuthHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
	tokens         service.TokenGenerator
	secureCookies  bool
}

func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService,
	tokens service.TokenGenerator, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		tokens:         tokens,
		secureCookies:  secureCookies,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	input.IPAddress = ratelimit.ClientIP(c)
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		case errors.Is(err, autherror.ErrAccessDenied):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied. Admin privileges required.",
			})
		default:
			log.Printf("admin login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	if result.TwoFactorRequired {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"twoFactorRequired": true,
			"method":            result.TwoFactorMethod,
		})
	}

	h.setAuthCookies(c, result.SessionToken, result.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
	})
}

func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	var input dto.VerifyTwoFactorInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Email == "" || input.TwoFactorCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and 2FA code are required",
		})
	}

	input.IPAddress = ratelimit.ClientIP(c)
	input.UserAgent = string(c.Request().Header.UserAgent())

	result, err := h.authService.VerifyTwoFactor(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user",
			})
		case errors.Is(err, autherror.ErrTwoFactorNotEnabled):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "2FA not enabled for user",
			})
		case errors.Is(err, autherror.ErrEmailOTPNotImplemented):
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
				"error": "Email OTP verification not implemented",
			})
		case errors.Is(err, autherror.ErrUnsupportedTwoFactorMethod):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported 2FA method",
			})
		case errors.Is(err, autherror.ErrInvalidTwoFactorCode):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid 2FA code",
			})
		default:
			log.Printf("2FA verification error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	h.setAuthCookies(c, result.SessionToken, result.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "2FA verification successful",
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(RefreshCookieName)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No refresh token provided",
		})
	}

	input := dto.RefreshInput{
		RefreshToken: refreshToken,
		IPAddress:    ratelimit.ClientIP(c),
		UserAgent:    string(c.Request().Header.UserAgent()),
	}

	pair, err := h.authService.Refresh(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrRefreshTokenNotFound),
			errors.Is(err, autherror.ErrRefreshTokenExpired),
			errors.Is(err, autherror.ErrUnauthorized):
			h.clearAuthCookies(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid refresh token",
			})
		default:
			log.Printf("token refresh error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	h.setAuthCookies(c, pair.SessionToken, pair.RefreshToken)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token refreshed",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionToken := c.Cookies(SessionCookieName)
	if sessionToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No active session",
		})
	}

	claims, err := h.tokens.VerifySessionToken(sessionToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid session token",
		})
	}

	// Body is optional; the default is the broad sign-out-everywhere policy.
	var input dto.LogoutInput
	_ = c.BodyParser(&input)
	allDevices := input.AllDevices == nil || *input.AllDevices

	err = h.authService.Logout(c.UserContext(), claims.UserID, sessionToken, allDevices,
		ratelimit.ClientIP(c), string(c.Request().Header.UserAgent()))
	if err != nil {
		// Logout must still be observable by the client: clear the cookies
		// and report success even when the datastore write failed.
		log.Printf("logout session update error: %v", err)
	}

	h.clearAuthCookies(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful",
	})
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, sessionToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   int(h.tokens.GetSessionTTL().Seconds()),
		Expires:  time.Now().Add(h.tokens.GetSessionTTL()),
		Secure:   h.secureCookies,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.tokens.GetRefreshTTL().Seconds()),
		Expires:  time.Now().Add(h.tokens.GetRefreshTTL()),
		Secure:   h.secureCookies,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{SessionCookieName, RefreshCookieName} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Now().Add(-time.Hour),
			Secure:   h.secureCookies,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
