package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/idtoken"

	"quill/api"
	"quill/config"
	"quill/models"
	"quill/session"
)

// AuthRequired authenticates admin requests. It accepts either the session
// cookie set at login or a Google ID token in the Authorization header. On
// success it stores the user identity in Locals and puts the backend bearer
// token on the request context for the API clients.
func AuthRequired(cfg *config.Config, sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			sess, err := sessionStore.Get(sessionID)
			if err == nil && sess != nil {
				// Touch failures only affect idle-expiry bookkeeping.
				_ = sessionStore.Touch(sess.ID)

				c.Locals("userID", sess.UserID)
				c.Locals("userEmail", sess.Email)
				c.Locals("userRole", sess.Role)
				c.Locals("session", sess)
				c.SetUserContext(api.WithBearer(c.UserContext(), sess.BackendToken))
				return c.Next()
			}
			c.ClearCookie("session_id")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		payload, err := idtoken.Validate(context.Background(), parts[1], cfg.GoogleClientID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("userID", payload.Subject)
		c.Locals("userEmail", payload.Claims["email"])

		return c.Next()
	}
}

// RoleRequired gates a route on the session role. It must run after
// AuthRequired; Bearer-only requests carry no role and are rejected.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetUserRole(c)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

func GetUserEmail(c *fiber.Ctx) string {
	email, ok := c.Locals("userEmail").(string)
	if !ok {
		return ""
	}
	return email
}

func GetUserRole(c *fiber.Ctx) string {
	role, ok := c.Locals("userRole").(string)
	if !ok {
		return ""
	}
	return role
}

func GetSession(c *fiber.Ctx) *models.Session {
	sess, ok := c.Locals("session").(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
