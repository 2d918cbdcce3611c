package rest

import (
	"net/http"

	"events-api/interfaces/http/rest/handlers"
	"events-api/interfaces/http/rest/middleware"
	"events-api/pkg/common"
	pkgerrors "events-api/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterOptions configures optional router behavior
type RouterOptions struct {
	EnableCORS bool
	// Debug exposes untyped error messages in responses
	Debug bool
}

// Router creates and configures the HTTP router
type Router struct {
	resolver handlers.Resolver
	logger   *zap.Logger
	opts     RouterOptions
}

// NewRouter creates a new router instance
func NewRouter(resolver handlers.Resolver, logger *zap.Logger, opts RouterOptions) *Router {
	return &Router{
		resolver: resolver,
		logger:   logger,
		opts:     opts,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	responder := handlers.NewErrorResponder(rt.logger, rt.opts.Debug)

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"http://localhost:3000", "https://*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", middleware.UsernameHeader},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.Respond(w, r, "", pkgerrors.NewNotFoundError("route "+r.URL.Path))
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Identity)
		r.Post("/graphql", handlers.NewResolverHandler(rt.resolver, responder, rt.logger).Resolve)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
