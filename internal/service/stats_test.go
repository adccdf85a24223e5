package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"greenKudi/internal/domain"
	"greenKudi/pkg/e"

	mock_service "greenKudi/internal/service/mocks"
)

func TestStatsService_GetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	note := "bags"
	empty := ""

	store := mock_service.NewMockHotspotStore(ctrl)
	store.EXPECT().Enumerate(gomock.Any()).Return([]domain.Hotspot{
		{ID: "1", CreatedAt: now.Add(-2 * time.Hour).UnixMilli(), Note: &note},
		{ID: "2", CreatedAt: now.Add(-30 * time.Minute).UnixMilli()},
		{ID: "3", CreatedAt: now.Add(-time.Minute).UnixMilli(), Note: &empty},
		{ID: "4", CreatedAt: now.Add(-60 * time.Minute).UnixMilli(), Note: &note},
	}, nil)

	svc := &statsService{store: store, now: func() time.Time { return now }}

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := domain.HotspotStats{Total: 4, Recent: 3, WithNotes: 2, Minutes: 60}
	if *got != want {
		t.Fatalf("unexpected stats: got=%+v want=%+v", *got, want)
	}
}

func TestStatsService_GetStats_CustomWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	store := mock_service.NewMockHotspotStore(ctrl)
	store.EXPECT().Enumerate(gomock.Any()).Return([]domain.Hotspot{
		{ID: "1", CreatedAt: now.Add(-10 * time.Minute).UnixMilli()},
		{ID: "2", CreatedAt: now.Add(-3 * time.Minute).UnixMilli()},
	}, nil)

	svc := &statsService{store: store, now: func() time.Time { return now }}

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Recent != 1 || got.Total != 2 || got.Minutes != 5 {
		t.Fatalf("unexpected stats: %+v", *got)
	}
}

func TestStatsService_GetStats_InvalidWindow(t *testing.T) {
	t.Parallel()

	for _, minutes := range []int{-1, 1441} {
		ctrl := gomock.NewController(t)
		store := mock_service.NewMockHotspotStore(ctrl)

		svc := NewStatsService(store)

		_, err := svc.GetStats(context.Background(), domain.StatsRequest{Minutes: minutes})
		if !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("minutes=%d: expected ErrInvalidInput, got %v", minutes, err)
		}
		ctrl.Finish()
	}
}

func TestStatsService_GetStats_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_service.NewMockHotspotStore(ctrl)
	store.EXPECT().Enumerate(gomock.Any()).Return(nil, e.ErrDeadline)

	svc := NewStatsService(store)

	if _, err := svc.GetStats(context.Background(), domain.StatsRequest{}); !errors.Is(err, e.ErrDeadline) {
		t.Fatalf("expected ErrDeadline, got %v", err)
	}
}
