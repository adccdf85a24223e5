package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	"greenKudi/internal/domain"
	"greenKudi/internal/service"

	mock_service "greenKudi/internal/service/mocks"
)

func TestService_Enumerate_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := mock_service.NewMockHotspotService(ctrl)
	want := []domain.Hotspot{{ID: "1", Lat: 1, Lng: 2}}

	hs.EXPECT().Enumerate(gomock.Any()).Return(want, nil).Times(1)

	svc := service.NewService(hs, nil)

	got, err := svc.Enumerate(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestService_Append_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := mock_service.NewMockHotspotService(ctrl)
	req := domain.CreateHotspotRequest{Lat: f64(1), Lng: f64(2)}
	want := &domain.Hotspot{ID: "9", Lat: 1, Lng: 2, CreatedAt: 5}

	hs.EXPECT().Append(gomock.Any(), req).Return(want, nil).Times(1)

	svc := service.NewService(hs, nil)

	got, err := svc.Append(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestService_Nearby_Delegates_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hs := mock_service.NewMockHotspotService(ctrl)
	req := domain.NearbyRequest{Lat: 1, Lng: 2, RadiusKM: 3}
	boom := errors.New("boom")

	hs.EXPECT().Nearby(gomock.Any(), req).Return(nil, boom).Times(1)

	svc := service.NewService(hs, nil)

	if _, err := svc.Nearby(context.Background(), req); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestService_GetStats_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ss := mock_service.NewMockStatsService(ctrl)
	req := domain.StatsRequest{Minutes: 15}
	want := &domain.HotspotStats{Total: 3, Recent: 1, Minutes: 15}

	ss.EXPECT().GetStats(gomock.Any(), req).Return(want, nil).Times(1)

	svc := service.NewService(nil, ss)

	got, err := svc.GetStats(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}
