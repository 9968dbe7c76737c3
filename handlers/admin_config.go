package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/models"
	"quill/validator"
)

// AdminGetSiteConfig returns the current site configuration.
func AdminGetSiteConfig(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := a.SiteConfig.Load(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch site config")
		}
		return success(c, fiber.Map{"config": cfg})
	}
}

// AdminUpdateSiteConfig validates and applies new site configuration.
func AdminUpdateSiteConfig(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSiteConfigRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		cfg, err := a.SiteConfig.Save(c.UserContext(), &req)
		if err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return validationError(c, err)
			}
			return serviceError(c, err, "Failed to update site config")
		}
		return success(c, fiber.Map{"config": cfg})
	}
}

// AdminDashboard returns the admin landing page counts.
func AdminDashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := a.Dashboard.Counts(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch dashboard")
		}
		return success(c, fiber.Map{"counts": counts})
	}
}
