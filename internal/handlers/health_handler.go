// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/webutil"
)

// Pinger はDB接続確認用 (*sql.DB が満たす)
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if err := h.db.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed: could not ping DB", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Version: h.version}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: h.version}, logger)
}
