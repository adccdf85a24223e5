package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenKudi/internal/domain"
	"greenKudi/internal/ids"
	"greenKudi/internal/service"
	"greenKudi/internal/storage/memory"
	"greenKudi/pkg/e"
)

func newMemoryService(t *testing.T) service.HotspotService {
	t.Helper()
	gen, err := ids.NewSnowflake(1)
	require.NoError(t, err)
	return service.NewHotspotService(memory.NewStore(), nil, nil, gen, discardLogger())
}

func TestStoreContract_FreshStoreIsEmpty(t *testing.T) {
	t.Parallel()

	svc := newMemoryService(t)
	got, err := svc.Enumerate(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreContract_AppendThenEnumerate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryService(t)

	before := time.Now().UnixMilli()
	created, err := svc.Append(ctx, domain.CreateHotspotRequest{
		Lat: f64(6.5255), Lng: f64(3.3679), Note: str("Community dump"),
	})
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 6.5255, created.Lat)
	assert.Equal(t, 3.3679, created.Lng)
	require.NotNil(t, created.Note)
	assert.Equal(t, "Community dump", *created.Note)
	assert.GreaterOrEqual(t, created.CreatedAt, before)
	assert.LessOrEqual(t, created.CreatedAt, after)

	all, err := svc.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, *created, all[len(all)-1])
}

func TestStoreContract_InvalidAppendLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryService(t)

	_, err := svc.Append(ctx, domain.CreateHotspotRequest{Lat: f64(1), Lng: f64(1)})
	require.NoError(t, err)

	_, err = svc.Append(ctx, domain.CreateHotspotRequest{Lng: f64(1)})
	require.True(t, errors.Is(err, e.ErrValidation))

	all, err := svc.Enumerate(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStoreContract_LongNoteStoredTruncated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryService(t)

	_, err := svc.Append(ctx, domain.CreateHotspotRequest{
		Lat: f64(1), Lng: f64(1), Note: str(strings.Repeat("x", 500)),
	})
	require.NoError(t, err)

	all, err := svc.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, *all[0].Note, domain.NoteMaxRunes)
}

func TestStoreContract_SequentialAppendsGetDistinctIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryService(t)

	a, err := svc.Append(ctx, domain.CreateHotspotRequest{Lat: f64(1), Lng: f64(1)})
	require.NoError(t, err)
	b, err := svc.Append(ctx, domain.CreateHotspotRequest{Lat: f64(1), Lng: f64(1)})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	all, err := svc.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID, "insertion order kept")
	assert.Equal(t, b.ID, all[1].ID)
}

func TestStoreContract_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	const n = 64
	ctx := context.Background()
	svc := newMemoryService(t)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Append(ctx, domain.CreateHotspotRequest{Lat: f64(float64(i % 90)), Lng: f64(1)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := svc.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)

	seen := make(map[string]struct{}, n)
	for _, h := range all {
		_, dup := seen[h.ID]
		assert.False(t, dup, "duplicate id %s", h.ID)
		seen[h.ID] = struct{}{}
	}
}
