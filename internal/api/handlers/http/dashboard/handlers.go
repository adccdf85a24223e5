package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.HotspotStats, error)
}

type Handler struct {
	logger      *slog.Logger
	StatsGetter StatsGetter
}

func NewHandler(logger *slog.Logger, statsGetter StatsGetter) *Handler {
	return &Handler{
		logger:      logger,
		StatsGetter: statsGetter,
	}
}

// GET /api/stats?minutes=60
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	var req domain.StatsRequest

	if raw := r.URL.Query().Get("minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, r, e.Wrap("minutes", e.ErrInvalidInput))
			return
		}
		req.Minutes = minutes
	}

	stats, err := h.StatsGetter.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
