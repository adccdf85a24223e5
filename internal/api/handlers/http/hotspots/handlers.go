package hotspots

import (
	"context"
	"errors"
	"net/http"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"

	"log/slog"
)

// maxBodyBytes caps POST bodies; anything larger is treated as malformed.
const maxBodyBytes = 1 << 20

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type HotspotService interface {
	Enumerate(ctx context.Context) ([]domain.Hotspot, error)
	Append(ctx context.Context, req domain.CreateHotspotRequest) (*domain.Hotspot, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.NearbyHotspot, error)
}

type Handler struct {
	logger         *slog.Logger
	HotspotService HotspotService
}

func NewHandler(logger *slog.Logger, hotspotService HotspotService) *Handler {
	return &Handler{
		logger:         logger,
		HotspotService: hotspotService,
	}
}

// GET /api/hotspots
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.HotspotService.Enumerate(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Hotspot{}
	}

	h.writeJSON(w, http.StatusOK, listResponse{Hotspots: items})
}

// POST /api/hotspots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := decodeBody(r.Body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	hotspot, err := h.HotspotService.Append(r.Context(), domain.NewCreateHotspotRequest(body))
	if err != nil {
		if errors.Is(err, e.ErrValidation) {
			h.log(r).Info("hotspot rejected", slog.String("reason", err.Error()))
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "lat and lng required"})
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("hotspot stored", slog.String("id", hotspot.ID))
	h.writeJSON(w, http.StatusCreated, hotspot)
}

// GET /api/hotspots/nearby?lat=&lng=&radius_km=
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	req, err := parseNearbyQuery(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.HotspotService.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.NearbyHotspot{}
	}

	h.writeJSON(w, http.StatusOK, nearbyResponse{Hotspots: items})
}
