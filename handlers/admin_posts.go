package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/models"
)

// AdminListPosts returns a page of posts in any status.
func AdminListPosts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset := pagination(c, 20)

		page, err := a.Posts.ListAll(c.UserContext(), c.Query("status"), limit, offset)
		if err != nil {
			return serviceError(c, err, "Failed to fetch posts")
		}
		return success(c, fiber.Map{
			"posts":  page.Posts,
			"total":  page.Total,
			"limit":  page.Limit,
			"offset": page.Offset,
		})
	}
}

// AdminGetPost returns one post regardless of status.
func AdminGetPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Posts.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

// AdminCreatePost creates a post.
func AdminCreatePost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		post, err := a.Posts.Create(c.UserContext(), &req)
		if err != nil {
			return serviceError(c, err, "Failed to create post")
		}
		return created(c, fiber.Map{"post": post})
	}
}

// AdminUpdatePost replaces a post.
func AdminUpdatePost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		post, err := a.Posts.Update(c.UserContext(), c.Params("id"), &req)
		if err != nil {
			return serviceError(c, err, "Failed to update post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

// AdminDeletePost removes a post.
func AdminDeletePost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Posts.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete post")
		}
		return success(c, fiber.Map{"status": "deleted"})
	}
}

// AdminPublishPost moves a post to published.
func AdminPublishPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Content.Publish(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to publish post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

// AdminUnpublishPost moves a post back to draft.
func AdminUnpublishPost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Content.Unpublish(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to unpublish post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

// AdminArchivePost retires a post.
func AdminArchivePost(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Content.Archive(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to archive post")
		}
		return success(c, fiber.Map{"post": post})
	}
}
