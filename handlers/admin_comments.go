package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quill/app"
)

// AdminModerationQueue returns pending comments awaiting review.
func AdminModerationQueue(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset := pagination(c, 20)

		queue, err := a.Moderation.Queue(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err, "Failed to fetch moderation queue")
		}
		return success(c, fiber.Map{"comments": queue})
	}
}

// AdminListComments returns comments in a given moderation state.
func AdminListComments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if status == "" {
			return badRequest(c, "status is required")
		}
		limit, offset := pagination(c, 20)

		comments, err := a.Comments.ListByStatus(c.UserContext(), status, limit, offset)
		if err != nil {
			return serviceError(c, err, "Failed to fetch comments")
		}
		return success(c, fiber.Map{"comments": comments})
	}
}

// AdminApproveComment makes a comment publicly visible.
func AdminApproveComment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comment, err := a.Moderation.Approve(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to approve comment")
		}
		return success(c, fiber.Map{"comment": comment})
	}
}

// AdminRejectComment hides a comment.
func AdminRejectComment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comment, err := a.Moderation.Reject(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to reject comment")
		}
		return success(c, fiber.Map{"comment": comment})
	}
}

// AdminApproveComments approves a batch of comments.
func AdminApproveComments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if len(req.IDs) == 0 {
			return badRequest(c, "ids is required")
		}

		approved, err := a.Moderation.ApproveAll(c.UserContext(), req.IDs)
		if err != nil {
			return serviceError(c, err, "Failed to approve comments")
		}
		return success(c, fiber.Map{"comments": approved})
	}
}

// AdminDeleteComment removes a comment outright.
func AdminDeleteComment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Moderation.Remove(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete comment")
		}
		return success(c, fiber.Map{"status": "deleted"})
	}
}
