package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/models"
)

// AdminListUsers returns all author accounts.
func AdminListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.List(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch users")
		}
		return success(c, fiber.Map{"users": users})
	}
}

// AdminGetUser returns one account.
func AdminGetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.Users.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch user")
		}
		return success(c, fiber.Map{"user": user})
	}
}

// AdminCreateUser invites a new author account.
func AdminCreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Create(c.UserContext(), &req)
		if err != nil {
			return serviceError(c, err, "Failed to create user")
		}
		return created(c, fiber.Map{"user": user})
	}
}

// AdminUpdateUser changes an account's details or role.
func AdminUpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.Users.Update(c.UserContext(), c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update user")
		}
		return success(c, fiber.Map{"user": user})
	}
}

// AdminDeleteUser removes an account.
func AdminDeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Users.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete user")
		}
		return success(c, fiber.Map{"status": "deleted"})
	}
}
