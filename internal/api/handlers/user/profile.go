package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
)

// ProfileHandler handles reading and updating the acting user's profile
type ProfileHandler struct {
	service users.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleGet returns the acting user's profile
// GET /api/users/me
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while fetching profile")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "User found", map[string]interface{}{
		"user": profile,
	})
}

// HandleGetByUsername returns a public profile looked up by username
// GET /api/users/{username}
func (h *ProfileHandler) HandleGetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, "username is required")
		return
	}

	profile, err := h.service.GetProfileByUsername(r.Context(), username)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while fetching profile")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "User found", map[string]interface{}{
		"user": profile,
	})
}

// HandleUpdate changes profile fields; absent fields are left alone
// PATCH /api/users/me
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input users.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), identity.UserID, input)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while updating profile")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Updated successfully", map[string]interface{}{
		"user": updated,
	})
}
