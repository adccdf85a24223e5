package hotspots

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type listResponse struct {
	Hotspots []domain.Hotspot `json:"hotspots"`
}

type nearbyResponse struct {
	Hotspots []domain.NearbyHotspot `json:"hotspots"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrMalformedInput):
		l.Info("malformed request body", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
	case errors.Is(err, e.ErrValidation), errors.Is(err, e.ErrInvalidInput):
		l.Info("invalid request", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input"})
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		l.Warn("conflict", slog.Any("error", err))
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: "conflict"})
	default:
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeBody reads exactly one JSON value. Numbers stay json.Number so that
// non-numeric coordinates reach validation instead of failing the decode.
func decodeBody(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrMalformedInput, err)
	}

	// запрещаем "лишние данные" после первого JSON-значения
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", e.ErrMalformedInput)
	}
	return v, nil
}

func parseNearbyQuery(q url.Values) (domain.NearbyRequest, error) {
	var req domain.NearbyRequest
	var err error

	if req.Lat, err = parseFloat(q.Get("lat"), true); err != nil {
		return req, fmt.Errorf("lat: %w", err)
	}
	if req.Lng, err = parseFloat(q.Get("lng"), true); err != nil {
		return req, fmt.Errorf("lng: %w", err)
	}
	if req.RadiusKM, err = parseFloat(q.Get("radius_km"), false); err != nil {
		return req, fmt.Errorf("radius_km: %w", err)
	}
	return req, nil
}

func parseFloat(s string, required bool) (float64, error) {
	if s == "" {
		if required {
			return 0, e.ErrInvalidInput
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, e.ErrInvalidInput
	}
	return f, nil
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
