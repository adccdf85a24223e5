package redis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenKudi/internal/config"
	"greenKudi/internal/domain"
	"greenKudi/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.RedisConfig{Addr: mr.Addr()}}
	r, err := NewRedis(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func strPtr(s string) *string { return &s }

// countingSource records how often the cached store reaches through.
type countingSource struct {
	hotspots   []domain.Hotspot
	enumerates int
	appendErr  error
}

func (s *countingSource) Enumerate(context.Context) ([]domain.Hotspot, error) {
	s.enumerates++
	out := make([]domain.Hotspot, len(s.hotspots))
	copy(out, s.hotspots)
	return out, nil
}

func (s *countingSource) Append(_ context.Context, h domain.Hotspot) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.hotspots = append(s.hotspots, h)
	return nil
}

func TestNewRedis_PingFails(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), &config.Config{Redis: config.RedisConfig{Addr: addr}}, newTestLogger())
	assert.Error(t, err)
}

func TestHotspotStore_AppendEnumerate(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	s := NewHotspotStore(r, newTestLogger())
	ctx := context.Background()

	empty, err := s.Enumerate(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	want := []domain.Hotspot{
		{ID: "1", Lat: 6.5255, Lng: 3.3679, Note: strPtr("Community dump"), CreatedAt: 10},
		{ID: "2", Lat: 6.5122, Lng: 3.3928, CreatedAt: 20},
	}
	for _, h := range want {
		require.NoError(t, s.Append(ctx, h))
	}

	got, err := s.Enumerate(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHotspotStore_CorruptEntry(t *testing.T) {
	t.Parallel()

	r, mr := newTestRedis(t)
	s := NewHotspotStore(r, newTestLogger())

	_, err := mr.RPush(hotspotListKey, "{not json")
	require.NoError(t, err)

	_, err = s.Enumerate(context.Background())
	assert.Error(t, err)
}

func TestCachedStore_HitAfterMiss(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	src := &countingSource{hotspots: []domain.Hotspot{{ID: "1", Lat: 1, Lng: 2}}}
	c := NewCachedStore(src, r, time.Minute, newTestLogger())
	ctx := context.Background()

	first, err := c.Enumerate(ctx)
	require.NoError(t, err)
	second, err := c.Enumerate(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.enumerates, "second read is served from the snapshot")
}

func TestCachedStore_AppendInvalidatesSnapshot(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	src := &countingSource{}
	c := NewCachedStore(src, r, time.Minute, newTestLogger())
	ctx := context.Background()

	got, err := c.Enumerate(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, c.Append(ctx, domain.Hotspot{ID: "1"}))

	got, err = c.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, 2, src.enumerates)
}

func TestCachedStore_StaleWriteUnderOldVersionIsIgnored(t *testing.T) {
	t.Parallel()

	r, mr := newTestRedis(t)
	src := &countingSource{}
	c := NewCachedStore(src, r, time.Minute, newTestLogger())
	ctx := context.Background()

	// a slow reader stored an empty snapshot under version 0 after the append
	// had already bumped the version
	require.NoError(t, c.Append(ctx, domain.Hotspot{ID: "1"}))
	require.NoError(t, mr.Set(snapshotKeyPrefix+"0", "[]"))

	got, err := c.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCachedStore_AppendErrorDoesNotBump(t *testing.T) {
	t.Parallel()

	r, mr := newTestRedis(t)
	boom := errors.New("boom")
	c := NewCachedStore(&countingSource{appendErr: boom}, r, time.Minute, newTestLogger())

	err := c.Append(context.Background(), domain.Hotspot{ID: "1"})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(snapshotVersionKey))
}

func TestCachedStore_FallsThroughWhenRedisDown(t *testing.T) {
	t.Parallel()

	r, mr := newTestRedis(t)
	src := &countingSource{hotspots: []domain.Hotspot{{ID: "1"}}}
	c := NewCachedStore(src, r, time.Minute, newTestLogger())
	mr.Close()

	got, err := c.Enumerate(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, c.Append(context.Background(), domain.Hotspot{ID: "2"}), "append succeeds once the inner store has it")
	assert.Len(t, src.hotspots, 2)
}

func TestCachedStore_SnapshotExpires(t *testing.T) {
	t.Parallel()

	r, mr := newTestRedis(t)
	src := &countingSource{}
	c := NewCachedStore(src, r, time.Second, newTestLogger())
	ctx := context.Background()

	_, err := c.Enumerate(ctx)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)
	_, err = c.Enumerate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, src.enumerates)
}

func TestEventQueue_PublishPopFIFO(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	q := NewEventQueue(r.Client, EventQueueKey)
	ctx := context.Background()

	first := domain.NewHotspotCreated(domain.Hotspot{ID: "1", CreatedAt: 1700000000000})
	second := domain.NewHotspotCreated(domain.Hotspot{ID: "2", CreatedAt: 1700000000001})
	require.NoError(t, q.Publish(ctx, first))
	require.NoError(t, q.Publish(ctx, second))

	got, err := q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, first.EventID, got.EventID)
	assert.Equal(t, "1", got.Hotspot.ID)
	assert.True(t, first.OccurredAt.Equal(got.OccurredAt))

	got, err = q.BRPop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Hotspot.ID)
}

func TestEventQueue_Empty(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	q := NewEventQueue(r.Client, EventQueueKey)

	_, err := q.BRPop(context.Background(), time.Second)
	assert.ErrorIs(t, err, e.ErrEventQueueEmpty)
}
