package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary      Проверка состояния
// @Tags         health
// @Produce      json
// @Success      200 {object} response.HealthResponse
// @Failure      503 {object} response.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Error("database ping failed", slog.String("error", err.Error()))
		response.WriteJSONSuccess(w, log, http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Database: "down"})
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, response.HealthResponse{Status: "ok", Database: "up"})
}
