package models

import "time"

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	CoverURL    string     `json:"cover_url,omitempty"`
	CategoryID  string     `json:"category_id,omitempty"`
	TagIDs      []string   `json:"tag_ids,omitempty"`
	AuthorID    string     `json:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	PostCount   int       `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	PostCount int       `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorName string    `json:"author_name"`
	Email      string    `json:"email,omitempty"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

type SiteConfig struct {
	Title           string            `json:"title"`
	Tagline         string            `json:"tagline,omitempty"`
	Description     string            `json:"description,omitempty"`
	URL             string            `json:"url,omitempty"`
	Theme           string            `json:"theme"`
	PostsPerPage    int               `json:"posts_per_page"`
	CommentsEnabled bool              `json:"comments_enabled"`
	SocialLinks     map[string]string `json:"social_links,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// PostPage is a page of posts plus the total row count for pagination.
type PostPage struct {
	Posts  []Post `json:"posts"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ==================== REQUEST PAYLOADS ====================

type CreatePostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Slug       string   `json:"slug" validate:"required,slug,max=200"`
	Excerpt    string   `json:"excerpt" validate:"max=500"`
	Content    string   `json:"content" validate:"required"`
	Status     string   `json:"status" validate:"required,poststatus"`
	CoverURL   string   `json:"cover_url" validate:"omitempty,url"`
	CategoryID string   `json:"category_id"`
	TagIDs     []string `json:"tag_ids"`
}

type UpdatePostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Slug       string   `json:"slug" validate:"required,slug,max=200"`
	Excerpt    string   `json:"excerpt" validate:"max=500"`
	Content    string   `json:"content" validate:"required"`
	Status     string   `json:"status" validate:"required,poststatus"`
	CoverURL   string   `json:"cover_url" validate:"omitempty,url"`
	CategoryID string   `json:"category_id"`
	TagIDs     []string `json:"tag_ids"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"required,slug,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Slug string `json:"slug" validate:"required,slug,max=50"`
}

type CreateCommentRequest struct {
	PostID     string `json:"post_id" validate:"required"`
	AuthorName string `json:"author_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Role  string `json:"role" validate:"required,oneof=admin editor author"`
}

type UpdateSiteConfigRequest struct {
	Title           string            `json:"title" validate:"required,min=1,max=100"`
	Tagline         string            `json:"tagline" validate:"max=200"`
	Description     string            `json:"description" validate:"max=1000"`
	URL             string            `json:"url" validate:"omitempty,url"`
	Theme           string            `json:"theme" validate:"required,theme"`
	PostsPerPage    int               `json:"posts_per_page" validate:"gte=1,lte=100"`
	CommentsEnabled bool              `json:"comments_enabled"`
	SocialLinks     map[string]string `json:"social_links" validate:"omitempty,dive,url"`
}
