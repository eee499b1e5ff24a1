package user

import (
	"encoding/json"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/users"
)

// CreateHandler handles account registration
type CreateHandler struct {
	service users.Service
}

// NewCreateHandler creates a new registration handler
func NewCreateHandler(service users.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate registers a new account. Credential handling happens
// upstream; this endpoint receives an already-hashed password, if any.
// POST /api/users
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" {
		handlers.WriteError(w, http.StatusBadRequest, "username and email are required")
		return
	}

	created, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while creating user")
		return
	}

	handlers.WriteSuccess(w, http.StatusCreated, "User created", map[string]interface{}{
		"user": created,
	})
}
