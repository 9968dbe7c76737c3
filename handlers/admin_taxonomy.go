package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/models"
)

// AdminCreateCategory creates a category.
func AdminCreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := a.Taxonomy.CreateCategory(c.UserContext(), &req)
		if err != nil {
			return serviceError(c, err, "Failed to create category")
		}
		return created(c, fiber.Map{"category": category})
	}
}

// AdminUpdateCategory renames a category.
func AdminUpdateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := a.Taxonomy.UpdateCategory(c.UserContext(), c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update category")
		}
		return success(c, fiber.Map{"category": category})
	}
}

// AdminDeleteCategory removes a category.
func AdminDeleteCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Taxonomy.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete category")
		}
		return success(c, fiber.Map{"status": "deleted"})
	}
}

// AdminCreateTag creates a tag.
func AdminCreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		tag, err := a.Taxonomy.CreateTag(c.UserContext(), &req)
		if err != nil {
			return serviceError(c, err, "Failed to create tag")
		}
		return created(c, fiber.Map{"tag": tag})
	}
}

// AdminDeleteTag removes a tag.
func AdminDeleteTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Taxonomy.DeleteTag(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete tag")
		}
		return success(c, fiber.Map{"status": "deleted"})
	}
}
