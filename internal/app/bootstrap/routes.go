// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	adminfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/admin"
	articlesfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/articles"
	authfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/auth"
	commentsfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/comments"
	healthfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/health"
	likesfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/likes"
	usersfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/users"
	adminstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/admins"
	articlestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/articles"
	commentstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/comments"
	likestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/likes"
	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	writerstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/writers"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/authz"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the MySQL and MongoDB handles bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The API is mounted under /api with a feature router per resource:
// auth, users, articles, comments, likes, and admin. A health endpoint
// that pings both stores lives at /health for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Stores over the backing databases.
	users := userstore.New(deps.SQL)
	admins := adminstore.New(deps.SQL)
	writers := writerstore.New(deps.SQL)
	articles := articlestore.New(deps.SQL, deps.MongoDatabase)
	comments := commentstore.New(deps.SQL)
	likes := likestore.New(deps.SQL)

	// Bearer token verification resolves the user fresh from the store on
	// every request, so role changes and deletions take effect immediately.
	tokens := token.NewService(appCfg.TokenSecret, appCfg.TokenTTL)
	resolver := authz.NewResolver(admins, writers)
	mw := auth.NewMiddleware(tokens, userstore.NewFetcher(users), resolver, logger)

	// User-generated article and comment content is sanitized before storage.
	sanitizer := bluemonday.UGCPolicy()

	errLog := jsonapi.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.SQL, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		authHandler := authfeature.NewHandler(users, tokens, errLog, logger)
		api.Mount("/auth", authfeature.Routes(authHandler))

		usersHandler := usersfeature.NewHandler(users, errLog, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler, mw))

		articlesHandler := articlesfeature.NewHandler(articles, sanitizer, errLog, logger)
		api.Mount("/articles", articlesfeature.Routes(articlesHandler, mw))

		commentsHandler := commentsfeature.NewHandler(comments, sanitizer, errLog, logger)
		api.Mount("/comments", commentsfeature.Routes(commentsHandler, mw))

		likesHandler := likesfeature.NewHandler(likes, errLog, logger)
		api.Mount("/likes", likesfeature.Routes(likesHandler, mw))

		adminHandler := adminfeature.NewHandler(users, admins, writers, errLog, logger)
		api.Mount("/admin", adminfeature.Routes(adminHandler, mw))
	})

	return r, nil
}
