package services

import (
	"context"
	"time"

	"quill/api"
	"quill/models"
)

// PostsAPI defines the backend operations needed for post management.
type PostsAPI interface {
	List(ctx context.Context, q api.ListQuery) (*models.PostPage, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

// TaxonomyAPI defines the backend operations for categories and tags.
type TaxonomyAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListTags(ctx context.Context) ([]models.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error)
	CreateTag(ctx context.Context, req *models.CreateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

// CommentsAPI defines the backend operations for comments.
type CommentsAPI interface {
	ListForPost(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Comment, error)
	Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)
	SetStatus(ctx context.Context, id, status string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// UsersAPI defines the backend operations for user management.
type UsersAPI interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id string, req *models.CreateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// SiteConfigAPI defines the backend operations for site configuration.
type SiteConfigAPI interface {
	GetPublic(ctx context.Context) (*models.SiteConfig, error)
	Update(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error)
}

// AuthAPI exchanges a verified Google identity for a backend token.
type AuthAPI interface {
	Exchange(ctx context.Context, email, name, picture, googleID string) (*api.ExchangeResponse, error)
}

// SessionStore defines the interface for session management.
type SessionStore interface {
	Create(userID, email, name, picture, role, accessToken, refreshToken string, tokenExpiry time.Time, backendToken string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Touch(sessionID string) error
	Delete(sessionID string) error
}

// ConfigSnapshotStore persists the last known site config locally so the
// site keeps rendering when the backend is unreachable.
type ConfigSnapshotStore interface {
	SaveSiteConfig(cfg *models.SiteConfig) error
	LoadSiteConfig() (*models.SiteConfig, error)
}

// EventPublisher publishes domain events. Production uses events.Bus.
type EventPublisher interface {
	Publish(topic string, payload any)
}

// GoogleClaims are the identity fields extracted from a Google ID token.
type GoogleClaims struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// TokenVerifier validates a Google ID token against an audience.
// Interface for testability - production wraps idtoken.Validate.
type TokenVerifier func(ctx context.Context, idToken, audience string) (*GoogleClaims, error)
