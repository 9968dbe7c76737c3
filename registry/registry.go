package registry

import (
	"context"
	"log/slog"

	"quill/api"
	"quill/config"
	"quill/container"
	"quill/events"
	"quill/services"
	"quill/session"
	"quill/usecases"
	"quill/validator"
)

// Bootstrap registers the full object graph and returns the container. The
// caller owns the container lifecycle: Warmup, MarkReady, and Clear on
// shutdown. All registrations are singletons; nothing is constructed here.
func Bootstrap(cfg *config.Config, logger *slog.Logger) *container.Container {
	c := container.New()

	c.RegisterInstance(Config, cfg)
	c.RegisterInstance(Logger, logger)

	c.Register(Validator, func(ctx context.Context, deps []any) (any, error) {
		return validator.New(), nil
	}, container.Options{Singleton: true})

	c.Register(EventBus, func(ctx context.Context, deps []any) (any, error) {
		bus := events.NewBus(deps[0].(*slog.Logger))
		subscribeAuditLog(bus, deps[0].(*slog.Logger))
		return bus, nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{Logger},
	})

	registerAPIClients(c)
	registerSessionLayer(c)
	registerServices(c)
	registerUseCases(c)

	return c
}

func registerAPIClients(c *container.Container) {
	c.Register(APIClient, func(ctx context.Context, deps []any) (any, error) {
		cfg := deps[0].(*config.Config)
		logger := deps[1].(*slog.Logger)
		return api.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{Config, Logger},
	})

	c.Register(PostsAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewPostsClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})

	c.Register(TaxonomyAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewTaxonomyClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})

	c.Register(CommentsAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewCommentsClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})

	c.Register(UsersAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewUsersClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})

	c.Register(SiteConfigAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewSiteConfigClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})

	c.Register(AuthAPI, func(ctx context.Context, deps []any) (any, error) {
		return api.NewAuthClient(deps[0].(*api.Client)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{APIClient},
	})
}

func registerSessionLayer(c *container.Container) {
	c.Register(SessionDB, func(ctx context.Context, deps []any) (any, error) {
		cfg := deps[0].(*config.Config)
		db, err := session.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{Config},
	})

	c.Register(SessionStore, func(ctx context.Context, deps []any) (any, error) {
		store := session.NewStore(deps[0].(*session.DB))
		store.StartCleanupRoutine()
		return store, nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{SessionDB},
	})
}

func registerServices(c *container.Container) {
	c.Register(AuthService, func(ctx context.Context, deps []any) (any, error) {
		return services.NewAuthService(
			deps[0].(*config.Config),
			deps[1].(*api.AuthClient),
			deps[2].(*session.Store),
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{Config, AuthAPI, SessionStore},
	})

	c.Register(PostService, func(ctx context.Context, deps []any) (any, error) {
		return services.NewPostService(
			deps[0].(*api.PostsClient),
			deps[1].(*events.Bus),
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{PostsAPI, EventBus},
	})

	c.Register(TaxonomyService, func(ctx context.Context, deps []any) (any, error) {
		return services.NewTaxonomyService(deps[0].(*api.TaxonomyClient)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{TaxonomyAPI},
	})

	c.Register(CommentService, func(ctx context.Context, deps []any) (any, error) {
		return services.NewCommentService(
			deps[0].(*api.CommentsClient),
			deps[1].(*events.Bus),
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{CommentsAPI, EventBus},
	})

	c.Register(UserService, func(ctx context.Context, deps []any) (any, error) {
		return services.NewUserService(deps[0].(*api.UsersClient)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{UsersAPI},
	})

	c.Register(ConfigService, func(ctx context.Context, deps []any) (any, error) {
		cfg := deps[3].(*config.Config)
		return services.NewConfigService(
			deps[0].(*api.SiteConfigClient),
			deps[1].(*session.Store),
			deps[2].(*events.Bus),
			cfg.SiteConfigTTL,
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{SiteConfigAPI, SessionStore, EventBus, Config},
	})
}

func registerUseCases(c *container.Container) {
	c.Register(ContentUseCase, func(ctx context.Context, deps []any) (any, error) {
		return usecases.NewContentUseCase(deps[0].(*services.PostService)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{PostService},
	})

	c.Register(ModerationUseCase, func(ctx context.Context, deps []any) (any, error) {
		return usecases.NewModerationUseCase(deps[0].(*services.CommentService)), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{CommentService},
	})

	c.Register(SiteConfigUseCase, func(ctx context.Context, deps []any) (any, error) {
		return usecases.NewSiteConfigUseCase(
			deps[0].(*services.ConfigService),
			deps[1].(*validator.Validator),
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{ConfigService, Validator},
	})

	c.Register(DashboardUseCase, func(ctx context.Context, deps []any) (any, error) {
		return usecases.NewDashboardUseCase(
			deps[0].(*services.PostService),
			deps[1].(*services.CommentService),
			deps[2].(*services.TaxonomyService),
			deps[3].(*services.UserService),
		), nil
	}, container.Options{
		Singleton:    true,
		Dependencies: []*container.Token{PostService, CommentService, TaxonomyService, UserService},
	})
}

// subscribeAuditLog logs the editorial events so moderation and publishing
// actions show up in the structured log stream.
func subscribeAuditLog(bus *events.Bus, logger *slog.Logger) {
	for _, topic := range []string{
		events.TopicPostPublished,
		events.TopicPostDeleted,
		events.TopicCommentModerated,
		events.TopicConfigUpdated,
	} {
		bus.Subscribe(topic, func(e events.Event) {
			logger.Info("domain event", "topic", e.Topic, "event_id", e.ID)
		})
	}
}
