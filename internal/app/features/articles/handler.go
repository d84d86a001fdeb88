// internal/app/features/articles/handler.go
package articles

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	articlestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/articles"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Handler serves article CRUD over the dual-store coordinator.
type Handler struct {
	Articles  *articlestore.Store
	Sanitizer *bluemonday.Policy
	ErrLog    *jsonapi.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs an articles Handler.
func NewHandler(articles *articlestore.Store, sanitizer *bluemonday.Policy, errLog *jsonapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Articles: articles, Sanitizer: sanitizer, ErrLog: errLog, Log: logger}
}

// HandleList returns all articles, optionally paginated with limit+page
// query parameters. Pagination slices in memory after full retrieval.
//
// GET /api/articles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	articles, err := h.Articles.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: list failed", err)
		return
	}

	rawLimit := r.URL.Query().Get("limit")
	rawPage := r.URL.Query().Get("page")
	if rawLimit == "" || rawPage == "" {
		jsonapi.Respond(w, http.StatusOK, map[string]any{"articles": articles})
		return
	}

	limit, errL := strconv.Atoi(rawLimit)
	page, errP := strconv.Atoi(rawPage)
	if errL != nil || errP != nil || limit < 1 || page < 1 {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid limit or page")
		return
	}

	total := len(articles)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{
		"articles":   articles[start:end],
		"page":       page,
		"totalPages": (total + limit - 1) / limit,
	})
}

// HandleGetByID returns a single article by its relational identifier.
//
// GET /api/articles/{id}
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Articles.GetByArticleID(ctx, id)
	if errors.Is(err, articlestore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: get failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"article": a})
}

type articleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// HandleCreate creates an article authored by the authenticated writer.
//
// POST /api/articles (writer)
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req articleRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}
	if req.Title == "" || req.Content == "" {
		jsonapi.Error(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	a, err := h.Articles.Create(ctx, req.Title, ident.ID, h.Sanitizer.Sanitize(req.Content), req.Tags)
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: create failed", err)
		return
	}

	h.Log.Info("article created",
		zap.Uint("article_id", a.ArticleID),
		zap.Uint("author", ident.ID))
	jsonapi.Respond(w, http.StatusCreated, map[string]any{"article": a})
}

// HandleUpdate updates an article. Only the author may update, writer
// capability notwithstanding.
//
// PUT /api/articles/{id} (writer)
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req articleRequest
	if !jsonapi.Decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	current, err := h.Articles.GetByArticleID(ctx, id)
	if errors.Is(err, articlestore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: fetch for update failed", err)
		return
	}
	if current.Author != ident.ID {
		jsonapi.Error(w, http.StatusForbidden, "Access denied")
		return
	}

	fields := articlestore.UpdateFields{}
	if req.Title != "" {
		fields.Title = &req.Title
	}
	if req.Content != "" {
		clean := h.Sanitizer.Sanitize(req.Content)
		fields.Content = &clean
	}
	if req.Tags != nil {
		fields.Tags = &req.Tags
	}

	a, err := h.Articles.Update(ctx, id, fields)
	if errors.Is(err, articlestore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: update failed", err)
		return
	}

	jsonapi.Respond(w, http.StatusOK, map[string]any{"article": a})
}

// HandleDelete removes an article from both stores. Author-only, like
// update.
//
// DELETE /api/articles/{id} (writer)
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	ident, ok := auth.CurrentUser(r)
	if !ok {
		jsonapi.Error(w, http.StatusUnauthorized, "Access denied")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	current, err := h.Articles.GetByArticleID(ctx, id)
	if errors.Is(err, articlestore.ErrNotFound) {
		jsonapi.Error(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "articles: fetch for delete failed", err)
		return
	}
	if current.Author != ident.ID {
		jsonapi.Error(w, http.StatusForbidden, "Access denied")
		return
	}

	if err := h.Articles.Delete(ctx, id); err != nil {
		if errors.Is(err, articlestore.ErrNotFound) {
			jsonapi.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		h.ErrLog.Internal(w, r, "articles: delete failed", err)
		return
	}

	h.Log.Info("article deleted", zap.Uint("article_id", id))
	jsonapi.Respond(w, http.StatusOK, map[string]any{"message": "Article deleted successfully"})
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		jsonapi.Error(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(n), true
}
