package system

import (
	"context"
	"net/http"
	"time"

	"log/slog"
)

// Pinger is a backing service the process cannot serve without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	logger  *slog.Logger
	pingers map[string]Pinger
	timeout time.Duration
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		pingers: make(map[string]Pinger),
		timeout: 2 * time.Second,
	}
}

// WithDependency registers a named backing service checked by SystemHealth.
func (h *Handler) WithDependency(name string, p Pinger) *Handler {
	h.pingers[name] = p
	return h
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	for name, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("health check failed", slog.String("dependency", name), slog.Any("error", err))
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(name + " unavailable"))
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
