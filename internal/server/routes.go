package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/middleware"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// SetupRoutes configures the router with global middleware and all API routes
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Global middleware, applied to every route
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins, s.Config.CORS.AllowCredentials))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.MethodNotAllowed(w)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.NotFound(w, "")
	})

	// Health and version routes
	r.Get(constants.HealthPath, s.Handlers.HealthHandler.Health)
	r.Get(constants.VersionPath, s.Handlers.HealthHandler.Version)

	// User routes
	r.Route(constants.UserBasePath, func(r chi.Router) {
		r.Post("/create", s.Handlers.UserHandler.CreateUser)
		r.Get("/findall", s.Handlers.UserHandler.GetAllUsers)
		r.Get("/findone", s.Handlers.UserHandler.GetUser)
		r.Put("/update", s.Handlers.UserHandler.UpdateUser)
		r.Delete("/delete", s.Handlers.UserHandler.DeleteUser)
	})

	// Secret routes
	r.Route(constants.SecretBasePath, func(r chi.Router) {
		r.Post("/create", s.Handlers.SecretHandler.CreateSecret)
		r.Get("/findall", s.Handlers.SecretHandler.GetAllSecrets)
		r.Get("/findbyuser", s.Handlers.SecretHandler.GetSecretsByUser)
		r.Get("/findone", s.Handlers.SecretHandler.GetSecret)
		r.Put("/update", s.Handlers.SecretHandler.UpdateSecret)
		r.Delete("/delete", s.Handlers.SecretHandler.DeleteSecret)
	})

	s.router = r
}

// GetRouter returns the server's router, primarily for testing
func (s *Server) GetRouter() chi.Router {
	return s.router
}
