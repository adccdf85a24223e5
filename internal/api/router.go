package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"greenKudi/internal/api/handlers/http/dashboard"
	"greenKudi/internal/api/handlers/http/hotspots"
	"greenKudi/internal/api/handlers/http/system"
	"greenKudi/internal/config"
	"greenKudi/internal/middleware"
	"greenKudi/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer builds the router. ctx bounds the lifetime of background
// middleware state such as the rate limiter janitor; deps are checked by the
// health endpoint.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, deps map[string]system.Pinger) *Server {
	hotspotHandler := hotspots.NewHandler(logger, svc.HotspotService)
	dashboardHandler := dashboard.NewHandler(logger, svc.StatsService)
	systemHandler := system.NewHandler(logger)
	for name, p := range deps {
		systemHandler.WithDependency(name, p)
	}

	r := InitRouter(ctx, cfg, hotspotHandler, dashboardHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	hotspotHandler *hotspots.Handler,
	dashboardHandler *dashboard.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	// чтобы request_id попал в лог chi.Logger
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)

	r.Route("/api", func(api chi.Router) {
		api.Route("/hotspots", func(hr chi.Router) {
			hr.Get("/", hotspotHandler.List)
			hr.Get("/nearby", hotspotHandler.Nearby)

			hr.With(middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL, logger)).
				Post("/", hotspotHandler.Create)
		})

		api.Get("/stats", dashboardHandler.Stats)
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
