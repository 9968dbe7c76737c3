// Package app assembles the handler-facing view of the object graph.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"quill/config"
	"quill/container"
	"quill/registry"
	"quill/services"
	"quill/session"
	"quill/usecases"
	"quill/validator"
)

// App holds the resolved services the HTTP layer depends on. It is built
// from the container once bootstrap has finished; handlers never touch the
// container directly.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Validator *validator.Validator
	Sessions  *session.Store

	Auth     *services.AuthService
	Posts    *services.PostService
	Taxonomy *services.TaxonomyService
	Comments *services.CommentService
	Users    *services.UserService

	Content    *usecases.ContentUseCase
	Moderation *usecases.ModerationUseCase
	SiteConfig *usecases.SiteConfigUseCase
	Dashboard  *usecases.DashboardUseCase
}

// New resolves the App from a bootstrapped container.
func New(ctx context.Context, c *container.Container) (*App, error) {
	app := &App{}

	if err := resolveInto(ctx, c, registry.Config, &app.Config); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.Logger, &app.Logger); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.Validator, &app.Validator); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.SessionStore, &app.Sessions); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.AuthService, &app.Auth); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.PostService, &app.Posts); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.TaxonomyService, &app.Taxonomy); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.CommentService, &app.Comments); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.UserService, &app.Users); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.ContentUseCase, &app.Content); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.ModerationUseCase, &app.Moderation); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.SiteConfigUseCase, &app.SiteConfig); err != nil {
		return nil, err
	}
	if err := resolveInto(ctx, c, registry.DashboardUseCase, &app.Dashboard); err != nil {
		return nil, err
	}

	return app, nil
}

func resolveInto[T any](ctx context.Context, c *container.Container, token *container.Token, out *T) error {
	v, err := container.Resolve[T](ctx, c, token)
	if err != nil {
		return fmt.Errorf("assemble app: %w", err)
	}
	*out = v
	return nil
}
