package routes

import (
	"github.com/go-chi/chi/v5"

	commenthandlers "Glimpse/internal/api/handlers/comment"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
)

// RegisterCommentRoutes registers comment edit/delete endpoints
func RegisterCommentRoutes(r chi.Router, service comments.Service, identity *middleware.IdentityMiddleware) {
	updateHandler := commenthandlers.NewUpdateHandler(service)
	deleteHandler := commenthandlers.NewDeleteHandler(service)

	r.Group(func(r chi.Router) {
		r.Use(identity.RequireIdentity)

		r.Patch("/api/comments/{commentID}", updateHandler.HandleUpdate)
		r.Delete("/api/comments/{commentID}", deleteHandler.HandleDelete)
	})
}
