package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"greenKudi/internal/config"
	"greenKudi/internal/domain"
	"greenKudi/pkg/e"
)

type chanSource struct {
	ch chan domain.HotspotEvent
}

func (s *chanSource) BRPop(ctx context.Context, timeout time.Duration) (domain.HotspotEvent, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev := <-s.ch:
		return ev, nil
	case <-t.C:
		return domain.HotspotEvent{}, e.ErrEventQueueEmpty
	case <-ctx.Done():
		return domain.HotspotEvent{}, ctx.Err()
	}
}

func newTestSender(url string, src EventSource) *WebhookSender {
	s := NewWebhookSender(slog.New(slog.NewTextHandler(io.Discard, nil)), config.WebhookConfig{URL: url}, src)
	s.http = &http.Client{
		Timeout:   time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
	s.popTimeout = 20 * time.Millisecond
	s.backoff = 5 * time.Millisecond
	return s
}

func TestWebhookSender_Run_DeliversWithRetry(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var hits int32
	received := make(chan domain.HotspotEvent, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, domain.EventHotspotCreated, r.Header.Get("X-Event-Type"))

		var ev domain.HotspotEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		received <- ev
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	src := &chanSource{ch: make(chan domain.HotspotEvent, 1)}
	sender := newTestSender(srv.URL, src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	ev := domain.NewHotspotCreated(domain.Hotspot{ID: "42", Lat: 6.5, Lng: 3.3, CreatedAt: 1700000000000})
	src.ch <- ev

	select {
	case got := <-received:
		assert.Equal(t, ev.EventID, got.EventID)
		assert.Equal(t, "42", got.Hotspot.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestWebhookSender_SendWithRetry_GivesUp(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := newTestSender(srv.URL, nil)

	ok := sender.sendWithRetry(context.Background(), domain.NewHotspotCreated(domain.Hotspot{ID: "1"}))
	require.False(t, ok)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestWebhookSender_SendWithRetry_StopsOnCancel(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sender := newTestSender(srv.URL, nil)
	sender.backoff = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	ok := sender.sendWithRetry(ctx, domain.NewHotspotCreated(domain.Hotspot{ID: "1"}))

	require.False(t, ok)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSleepCtx(t *testing.T) {
	t.Parallel()

	assert.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepCtx(ctx, time.Hour))
}
