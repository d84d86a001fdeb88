// internal/app/features/users/handler.go
package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves user profile reads and updates.
type Handler struct {
	Users  *userstore.Store
	ErrLog *jsonapi.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(users *userstore.Store, errLog *jsonapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, ErrLog: errLog, Log: logger}
}

// publicUser is the client-facing shape; the password hash never leaves the
// store layer's model, and this narrows the rest away too.
type publicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// HandleGetByID returns a user's public profile.
//
// GET /api/users/{id}
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if errors.Is(err, userstore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "users: get by id failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{
		"user": publicUser{ID: u.ID, Username: u.Username, Email: u.Email},
	})
}

// HandleGetByUsername returns a user's public profile by username.
//
// GET /api/users/username/{username} (authenticated)
func (h *Handler) HandleGetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, username)
	if errors.Is(err, userstore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "users: get by username failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{
		"user": publicUser{ID: u.ID, Username: u.Username, Email: u.Email},
	})
}

type updateUserRequest struct {
	Email string `json:"email"`
}

// HandleUpdate changes the authenticated user's email. The path identifier
// must match the authenticated identity; mismatches are rejected before any
// store call.
//
// PUT /api/users/{id} (authenticated)
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}
	if ident.ID != id {
		jsonapi.Error(w, http.StatusForbidden, "Forbidden access")
		return
	}

	var req updateUserRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}
	if req.Email == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.UpdateEmail(ctx, id, req.Email); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			jsonapi.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.ErrLog.Internal(w, r, "users: update email failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"message": "User updated successfully"})
}

// HandleDelete removes a user.
//
// DELETE /api/users/{id} (admin)
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			jsonapi.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.ErrLog.Internal(w, r, "users: delete failed", err)
		return
	}

	h.Log.Info("user deleted", zap.Uint("user_id", id))
	jsonapi.Respond(w, http.StatusOK, map[string]any{"message": "User deleted successfully"})
}

// parseID reads a numeric URL parameter, writing a 400 response when it is
// not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(n), true
}
