package routes

import (
	"github.com/go-chi/chi/v5"

	commenthandlers "Glimpse/internal/api/handlers/comment"
	posthandlers "Glimpse/internal/api/handlers/post"
	userhandlers "Glimpse/internal/api/handlers/user"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
)

// RegisterPostRoutes registers post, reaction, comment and save endpoints
func RegisterPostRoutes(
	r chi.Router,
	postService posts.Service,
	commentService comments.Service,
	userService users.Service,
	identity *middleware.IdentityMiddleware,
) {
	createHandler := posthandlers.NewCreateHandler(postService)
	getHandler := posthandlers.NewGetHandler(postService)
	listHandler := posthandlers.NewListHandler(postService)
	deleteHandler := posthandlers.NewDeleteHandler(postService)
	reactHandler := posthandlers.NewReactHandler(postService)

	commentCreate := commenthandlers.NewCreateHandler(commentService)
	commentList := commenthandlers.NewListHandler(commentService)

	savedHandler := userhandlers.NewSavedHandler(userService)

	// Reads are open; every mutation requires a resolved identity
	r.Get("/api/posts/{postID}", getHandler.HandleGet)
	r.Get("/api/posts/{postID}/comments", commentList.HandleList)
	r.Get("/api/users/{userID}/posts", listHandler.HandleListByUser)

	r.Group(func(r chi.Router) {
		r.Use(identity.RequireIdentity)

		r.Post("/api/posts", createHandler.HandleCreate)
		r.Delete("/api/posts/{postID}", deleteHandler.HandleDelete)

		r.Post("/api/posts/{postID}/like", reactHandler.HandleLike)
		r.Post("/api/posts/{postID}/dislike", reactHandler.HandleDislike)

		r.Post("/api/posts/{postID}/comments", commentCreate.HandleCreate)

		r.Post("/api/posts/{postID}/save", savedHandler.HandleSave)
		r.Post("/api/posts/{postID}/unsave", savedHandler.HandleUnsave)
	})
}
