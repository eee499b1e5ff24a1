package routes

import (
	"github.com/go-chi/chi/v5"

	userhandlers "Glimpse/internal/api/handlers/user"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
)

// RegisterUserRoutes registers profile and follow-graph endpoints
func RegisterUserRoutes(r chi.Router, service users.Service, identity *middleware.IdentityMiddleware) {
	createHandler := userhandlers.NewCreateHandler(service)
	profileHandler := userhandlers.NewProfileHandler(service)
	followHandler := userhandlers.NewFollowHandler(service)

	r.Post("/api/users", createHandler.HandleCreate)
	r.Get("/api/users/{username}", profileHandler.HandleGetByUsername)

	r.Group(func(r chi.Router) {
		r.Use(identity.RequireIdentity)

		r.Get("/api/users/me", profileHandler.HandleGet)
		r.Patch("/api/users/me", profileHandler.HandleUpdate)

		r.Post("/api/users/{userID}/follow", followHandler.HandleFollow)
		r.Post("/api/users/{userID}/unfollow", followHandler.HandleUnfollow)
	})
}
