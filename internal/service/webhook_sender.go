package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"greenKudi/internal/config"
	"greenKudi/internal/domain"
	"greenKudi/internal/metrics"
	"greenKudi/pkg/e"
)

type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.HotspotEvent, error)
}

type WebhookSender struct {
	logger     *slog.Logger
	cfg        config.WebhookConfig
	queue      EventSource
	http       *http.Client
	popTimeout time.Duration
	backoff    time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource) *WebhookSender {
	return &WebhookSender{
		logger:     logger,
		cfg:        cfg,
		queue:      q,
		http:       &http.Client{Timeout: 5 * time.Second},
		popTimeout: 5 * time.Second,
		backoff:    time.Second,
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := s.queue.BRPop(ctx, s.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrEventQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending webhook", slog.String("hotspot_id", event.Hotspot.ID))
		s.sendWithRetry(ctx, event)
	}
}

func (s *WebhookSender) sendWithRetry(ctx context.Context, ev domain.HotspotEvent) bool {
	const maxRetries = 3

	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal webhook payload failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Event-Type", ev.Type)

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			metrics.WebhooksDelivered.WithLabelValues("ok").Inc()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < maxRetries && !sleepCtx(ctx, time.Duration(attempt)*s.backoff) {
			return false
		}
	}

	metrics.WebhooksDelivered.WithLabelValues("failed").Inc()
	return false
}

// sleepCtx waits d or until ctx is done; it reports whether the full wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
