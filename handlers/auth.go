package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/middleware"
	"quill/models"
)

// Login handles admin sign-in via Google.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if req.IDToken == "" {
			return badRequest(c, "id_token is required")
		}

		sess, err := a.Auth.LoginWithIDToken(c.UserContext(), &req)
		if err != nil {
			slog.Warn("login failed", "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication failed",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     "session_id",
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   a.Config.Env == "production",
			SameSite: "Lax",
		})

		return success(c, fiber.Map{
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
				"role":    sess.Role,
			},
		})
	}
}

// Logout drops the session and clears the cookie.
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			if err := a.Auth.Logout(sessionID); err != nil {
				slog.Warn("logout failed", "error", err)
			}
		}
		c.ClearCookie("session_id")
		return success(c, fiber.Map{"status": "logged out"})
	}
}

// Me returns the signed-in user. Requires AuthRequired.
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := middleware.GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}
		return success(c, fiber.Map{
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
				"role":    sess.Role,
			},
		})
	}
}
