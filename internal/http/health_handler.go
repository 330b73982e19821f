package http

import (
	"context"
	"net/http"
	"time"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

type healthHandler struct {
	db db.HealthChecker
}

func newHealthHandler(db db.HealthChecker) *healthHandler {
	return &healthHandler{db: db}
}

func (h *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if ok, err := h.db.IsHealthy(ctx); err != nil || !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
		//nolint:errcheck
		w.Write([]byte("unavailable"))
		return
	}
	//nolint:errcheck
	w.Write([]byte("ok"))
}
