// internal/app/features/comments/handler.go
package comments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	commentstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/comments"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Handler serves comment CRUD.
type Handler struct {
	Comments  *commentstore.Store
	Sanitizer *bluemonday.Policy
	ErrLog    *jsonapi.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs a comments Handler.
func NewHandler(comments *commentstore.Store, sanitizer *bluemonday.Policy, errLog *jsonapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Comments: comments, Sanitizer: sanitizer, ErrLog: errLog, Log: logger}
}

type createCommentRequest struct {
	ArticleID uint   `json:"articleId"`
	Content   string `json:"content"`
}

// HandleCreate adds a comment by the authenticated user.
//
// POST /api/comments (authenticated)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req createCommentRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}
	if req.ArticleID == 0 || req.Content == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Please provide articleId and content")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Comments.Create(ctx, req.ArticleID, ident.ID, h.Sanitizer.Sanitize(req.Content))
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: create failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusCreated, map[string]any{"comment": c})
}

type updateCommentRequest struct {
	CommentID uint   `json:"commentId"`
	Content   string `json:"content"`
}

// HandleUpdate replaces the content of the caller's own comment.
//
// PUT /api/comments (authenticated)
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req updateCommentRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}
	if req.CommentID == 0 || req.Content == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Please provide commentId and content")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Comments.GetByID(ctx, req.CommentID)
	if errors.Is(err, commentstore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: fetch for update failed", err)
		return
	}
	if existing.UserID != ident.ID {
		jsonapi.Error(w, http.StatusForbidden, "You are not authorized to update this comment")
		return
	}

	c, err := h.Comments.Update(ctx, req.CommentID, h.Sanitizer.Sanitize(req.Content))
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: update failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"comment": c})
}

// HandleDelete removes the caller's own comment.
//
// DELETE /api/comments/{id} (authenticated)
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(w, r, "id")
	if !ok {
		return
	}

	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.Comments.GetByID(ctx, id)
	if errors.Is(err, commentstore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: fetch for delete failed", err)
		return
	}
	if existing.UserID != ident.ID {
		jsonapi.Error(w, http.StatusForbidden, "You are not authorized to delete this comment")
		return
	}

	if err := h.Comments.Delete(ctx, id); err != nil {
		h.ErrLog.Internal(w, r, "comments: delete failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"message": "Comment deleted successfully"})
}

// HandleListByArticle returns the comments on an article with each
// commenter's username.
//
// GET /api/comments/article/{article_id}
func (h *Handler) HandleListByArticle(w http.ResponseWriter, r *http.Request) {
	articleID, ok := parseUintParam(w, r, "article_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.ListByArticle(ctx, articleID)
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: list by article failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"comments": comments})
}

// HandleListByUser returns all comments made by a user.
//
// GET /api/comments/user/{user_id}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUintParam(w, r, "user_id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.ListByUser(ctx, userID)
	if err != nil {
		h.ErrLog.Internal(w, r, "comments: list by user failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"comments": comments})
}

func parseUintParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(n), true
}
