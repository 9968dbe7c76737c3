// Package registry declares the application's service tokens and registers
// the full object graph into a container.
package registry

import "quill/container"

// The closed set of tokens the application resolves against. Tokens compare
// by identity, so every consumer must import these instead of minting its own.
var (
	Config    = container.NewToken("config")
	Logger    = container.NewToken("logger")
	Validator = container.NewToken("validator")

	APIClient     = container.NewToken("api.client")
	PostsAPI      = container.NewToken("api.posts")
	TaxonomyAPI   = container.NewToken("api.taxonomy")
	CommentsAPI   = container.NewToken("api.comments")
	UsersAPI      = container.NewToken("api.users")
	SiteConfigAPI = container.NewToken("api.siteconfig")
	AuthAPI       = container.NewToken("api.auth")

	SessionDB    = container.NewToken("session.db")
	SessionStore = container.NewToken("session.store")
	EventBus     = container.NewToken("events.bus")

	AuthService     = container.NewToken("services.auth")
	PostService     = container.NewToken("services.posts")
	TaxonomyService = container.NewToken("services.taxonomy")
	CommentService  = container.NewToken("services.comments")
	UserService     = container.NewToken("services.users")
	ConfigService   = container.NewToken("services.config")

	ContentUseCase    = container.NewToken("usecases.content")
	ModerationUseCase = container.NewToken("usecases.moderation")
	SiteConfigUseCase = container.NewToken("usecases.siteconfig")
	DashboardUseCase  = container.NewToken("usecases.dashboard")
)
