// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/token"
	"go.uber.org/zap"
)

// Handler serves registration and login.
type Handler struct {
	Users  *userstore.Store
	Tokens *token.Service
	ErrLog *jsonapi.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(users *userstore.Store, tokens *token.Service, errLog *jsonapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Tokens: tokens, ErrLog: errLog, Log: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new user account.
//
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		jsonapi.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, req.Username, req.Email, req.Password)
	if errors.Is(err, userstore.ErrDuplicateUser) {
		jsonapi.Error(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "register: create user failed", err)
		return
	}

	h.Log.Info("user registered", zap.Uint("user_id", u.ID), zap.String("username", u.Username))
	jsonapi.Respond(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    u,
	})
}

// HandleLogin verifies credentials and issues a bearer token.
//
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Both username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, userstore.ErrBadCredentials) {
		jsonapi.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "login: authenticate failed", err)
		return
	}

	tok, err := h.Tokens.Issue(u.Username)
	if err != nil {
		h.ErrLog.Internal(w, r, "login: token issue failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{
		"token":   tok,
		"message": "Login successful",
	})
}
