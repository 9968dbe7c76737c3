package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quill/app"
	"quill/models"
)

const defaultPageSize = 10

// ListPosts returns a page of published posts. Supports category, tag, and
// search filters.
func ListPosts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset := pagination(c, defaultPageSize)

		page, err := a.Posts.ListPublished(c.UserContext(),
			c.Query("category"), c.Query("tag"), c.Query("search"),
			limit, offset)
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

// GetPostBySlug returns a single published post.
func GetPostBySlug(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := a.Posts.GetBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch post")
		}
		return success(c, fiber.Map{"post": post})
	}
}

// ListCategories returns all categories.
func ListCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.Taxonomy.ListCategories(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch categories")
		}
		return success(c, fiber.Map{"categories": categories})
	}
}

// GetCategoryBySlug returns one category.
func GetCategoryBySlug(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := a.Taxonomy.GetCategoryBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch category")
		}
		return success(c, fiber.Map{"category": category})
	}
}

// ListTags returns all tags.
func ListTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Taxonomy.ListTags(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch tags")
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// GetTagBySlug returns one tag.
func GetTagBySlug(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag, err := a.Taxonomy.GetTagBySlug(c.UserContext(), c.Params("slug"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch tag")
		}
		return success(c, fiber.Map{"tag": tag})
	}
}

// ListComments returns the approved comments for a post.
func ListComments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Query("post_id")
		if postID == "" {
			return badRequest(c, "post_id is required")
		}
		limit, offset := pagination(c, 20)

		comments, err := a.Comments.ListApproved(c.UserContext(), postID, limit, offset)
		if err != nil {
			return serviceError(c, err, "Failed to fetch comments")
		}
		return success(c, fiber.Map{"comments": comments})
	}
}

// SubmitComment accepts a visitor comment for moderation.
func SubmitComment(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		enabled := a.SiteConfig.CommentsEnabled(c.UserContext())
		comment, err := a.Comments.Submit(c.UserContext(), &req, enabled)
		if err != nil {
			return serviceError(c, err, "Failed to submit comment")
		}
		return created(c, fiber.Map{"comment": comment})
	}
}

// GetSiteConfig returns the public site configuration.
func GetSiteConfig(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := a.SiteConfig.Load(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch site config")
		}
		return success(c, fiber.Map{"config": cfg})
	}
}
