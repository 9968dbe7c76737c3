package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"quill/app"
	"quill/config"
	"quill/container"
	"quill/handlers"
	"quill/middleware"
	"quill/models"
	"quill/registry"
)

func main() {
	cfg := config.Load()

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	// Register the object graph, eagerly construct it, then open the
	// readiness gate for accessor handles.
	c := registry.Bootstrap(cfg, logger)

	warmupCtx, cancelWarmup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelWarmup()
	if err := c.Warmup(warmupCtx); err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	c.MarkReady()
	logger.Info("service container ready")

	a, err := app.New(context.Background(), c)
	if err != nil {
		logger.Error("failed to assemble app", "error", err)
		os.Exit(1)
	}

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: cfg.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
		ReadBufferSize:        8192,
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	registerRoutes(srv, a, c)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	go func() {
		if err := srv.Listen(":" + cfg.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// Dispose the object graph in reverse construction order.
	if err := c.Clear(); err != nil {
		logger.Error("container teardown failed", "error", err)
	}

	logger.Info("server stopped")
}

func registerRoutes(srv *fiber.App, a *app.App, c *container.Container) {
	srv.Get("/health", func(ctx *fiber.Ctx) error {
		if !c.IsReady() {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "starting"})
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	// Public surface
	srv.Get("/api/posts", handlers.ListPosts(a))
	srv.Get("/api/posts/:slug", handlers.GetPostBySlug(a))
	srv.Get("/api/categories", handlers.ListCategories(a))
	srv.Get("/api/categories/:slug", handlers.GetCategoryBySlug(a))
	srv.Get("/api/tags", handlers.ListTags(a))
	srv.Get("/api/tags/:slug", handlers.GetTagBySlug(a))
	srv.Get("/api/comments", handlers.ListComments(a))
	srv.Post("/api/comments", handlers.SubmitComment(a))
	srv.Get("/api/site-config", handlers.GetSiteConfig(a))

	srv.Post("/api/auth/login", handlers.Login(a))
	srv.Post("/api/auth/logout", handlers.Logout(a))

	// Admin surface
	admin := srv.Group("/api/admin",
		middleware.AuthRequired(a.Config, a.Sessions),
		limiter.New(limiter.Config{
			Max:        100,
			Expiration: time.Minute,
			KeyGenerator: func(ctx *fiber.Ctx) string {
				if userID := middleware.GetUserID(ctx); userID != "" {
					return "user:" + userID
				}
				return ctx.IP()
			},
			LimitReached: func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded for your account",
				})
			},
		}),
	)

	admin.Get("/me", handlers.Me(a))
	admin.Get("/dashboard", handlers.AdminDashboard(a))

	admin.Get("/posts", handlers.AdminListPosts(a))
	admin.Post("/posts", handlers.AdminCreatePost(a))
	admin.Get("/posts/:id", handlers.AdminGetPost(a))
	admin.Put("/posts/:id", handlers.AdminUpdatePost(a))
	admin.Delete("/posts/:id", handlers.AdminDeletePost(a))
	admin.Post("/posts/:id/publish", handlers.AdminPublishPost(a))
	admin.Post("/posts/:id/unpublish", handlers.AdminUnpublishPost(a))
	admin.Post("/posts/:id/archive", handlers.AdminArchivePost(a))

	admin.Post("/categories", handlers.AdminCreateCategory(a))
	admin.Put("/categories/:id", handlers.AdminUpdateCategory(a))
	admin.Delete("/categories/:id", handlers.AdminDeleteCategory(a))
	admin.Post("/tags", handlers.AdminCreateTag(a))
	admin.Delete("/tags/:id", handlers.AdminDeleteTag(a))

	admin.Get("/comments", handlers.AdminListComments(a))
	admin.Get("/comments/queue", handlers.AdminModerationQueue(a))
	admin.Post("/comments/:id/approve", handlers.AdminApproveComment(a))
	admin.Post("/comments/:id/reject", handlers.AdminRejectComment(a))
	admin.Post("/comments/approve", handlers.AdminApproveComments(a))
	admin.Delete("/comments/:id", handlers.AdminDeleteComment(a))

	// User and config management are admin-role only.
	restricted := admin.Group("", middleware.RoleRequired(models.RoleAdmin))
	restricted.Get("/users", handlers.AdminListUsers(a))
	restricted.Post("/users", handlers.AdminCreateUser(a))
	restricted.Get("/users/:id", handlers.AdminGetUser(a))
	restricted.Put("/users/:id", handlers.AdminUpdateUser(a))
	restricted.Delete("/users/:id", handlers.AdminDeleteUser(a))
	restricted.Get("/site-config", handlers.AdminGetSiteConfig(a))
	restricted.Put("/site-config", handlers.AdminUpdateSiteConfig(a))
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: cfg.Env == "development",
	}

	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		if code >= 500 {
			logger.Error("unhandled error",
				"request_id", requestID,
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err,
			)
		}

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}
