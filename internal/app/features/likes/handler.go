// internal/app/features/likes/handler.go
package likes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	likestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/likes"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves like creation, removal, and listings.
type Handler struct {
	Likes  *likestore.Store
	ErrLog *jsonapi.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a likes Handler.
func NewHandler(likes *likestore.Store, errLog *jsonapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Likes: likes, ErrLog: errLog, Log: logger}
}

type createLikeRequest struct {
	ArticleID uint `json:"article_id"`
}

// HandleCreate likes an article on behalf of the authenticated user. A
// second like for the same pair is rejected, not duplicated.
//
// POST /api/likes (authenticated)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req createLikeRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}
	if req.ArticleID == 0 {
		jsonapi.Error(w, http.StatusBadRequest, "Please provide article_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Likes.Create(ctx, req.ArticleID, ident.ID)
	if errors.Is(err, likestore.ErrAlreadyLiked) {
		jsonapi.Error(w, http.StatusConflict, "You have already liked this article")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "likes: create failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusCreated, map[string]any{"like": l})
}

// HandleDelete removes the authenticated user's like on an article.
//
// DELETE /api/likes?article_id= (authenticated)
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	articleID, ok := parseArticleIDQuery(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Likes.GetByArticleAndUser(ctx, articleID, ident.ID)
	if errors.Is(err, likestore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "You have not liked this article")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "likes: lookup failed", err)
		return
	}

	if err := h.Likes.Delete(ctx, l.ID); err != nil {
		h.ErrLog.Internal(w, r, "likes: delete failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"message": "Like removed"})
}

// HandleListByArticle returns all likes on an article.
//
// GET /api/likes/article/{article_id}
func (h *Handler) HandleListByArticle(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "article_id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid article_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	likes, err := h.Likes.ListByArticle(ctx, uint(n))
	if err != nil {
		h.ErrLog.Internal(w, r, "likes: list by article failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"likes": likes})
}

// HandleListByUser returns all likes made by a user.
//
// GET /api/likes/user/{user_id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "user_id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid user_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	likes, err := h.Likes.ListByUser(ctx, uint(n))
	if err != nil {
		h.ErrLog.Internal(w, r, "likes: list by user failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"likes": likes})
}

// HandleLiked reports whether the authenticated user has liked an article.
//
// GET /api/likes/liked?article_id= (authenticated)
func (h *Handler) HandleLiked(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	articleID, ok := parseArticleIDQuery(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	liked, err := h.Likes.HasLiked(ctx, articleID, ident.ID)
	if err != nil {
		h.ErrLog.Internal(w, r, "likes: has-liked failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"liked": liked})
}

func parseArticleIDQuery(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("article_id")
	if raw == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Please provide article_id")
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid article_id")
		return 0, false
	}
	return uint(n), true
}
