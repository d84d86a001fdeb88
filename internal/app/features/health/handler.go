// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Mongo *mongo.Client
	SQL   *gorm.DB
	Log   *zap.Logger
}

// NewHandler constructs a health Handler over both store clients.
func NewHandler(mongoClient *mongo.Client, sql *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{Mongo: mongoClient, SQL: sql, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	Relational string `json:"relational"`
	Document   string `json:"document"`
	Message    string `json:"message,omitempty"`
}

// Serve handles GET /health. Both stores must answer a ping for a 200.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:     "ok",
		Relational: "connected",
		Document:   "connected",
	}
	status := http.StatusOK

	if err := h.pingSQL(ctx); err != nil {
		h.Log.Error("health-check: relational ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Relational = "disconnected"
		resp.Message = "Database unavailable"
		status = http.StatusServiceUnavailable
	}

	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Document = "disconnected"
		resp.Message = "Database unavailable"
		status = http.StatusServiceUnavailable
	}

	jsonapi.Respond(w, status, resp)
}

func (h *Handler) pingSQL(ctx context.Context) error {
	db, err := h.SQL.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}
