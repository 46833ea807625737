package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-punch-tracker/internal/apiclient"
	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/mock"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// dashboardSink collects delivered dashboards.
type dashboardSink struct {
	mu   sync.Mutex
	got  []models.Dashboard
	seen chan struct{}
}

func newDashboardSink() *dashboardSink {
	return &dashboardSink{seen: make(chan struct{}, 100)}
}

func (s *dashboardSink) put(d models.Dashboard) {
	s.mu.Lock()
	s.got = append(s.got, d)
	s.mu.Unlock()
	s.seen <- struct{}{}
}

func (s *dashboardSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestDashboardPoller_LoadsImmediatelyAndOnTick(t *testing.T) {
	dashboard := mock.NewMockDashboardService(gomock.NewController(t))
	dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{Profile: models.User{UserID: 1}}, nil).MinTimes(3)

	sink := newDashboardSink()
	p := NewDashboardPoller(dashboard, 10*time.Millisecond, sink.put, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-sink.seen:
		case <-time.After(time.Second):
			t.Fatal("dashboard was not delivered")
		}
	}

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, sink.count(), 3)
}

func TestDashboardPoller_TransientErrorKeepsPolling(t *testing.T) {
	dashboard := mock.NewMockDashboardService(gomock.NewController(t))
	gomock.InOrder(
		dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, apiclient.ErrTransport),
		dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, nil).AnyTimes(),
	)

	sink := newDashboardSink()
	p := NewDashboardPoller(dashboard, 5*time.Millisecond, sink.put, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	select {
	case <-sink.seen:
	case <-time.After(time.Second):
		t.Fatal("poller did not recover from a transient error")
	}

	p.Stop()
	require.NoError(t, <-done)
}

func TestDashboardPoller_StopsWhenSessionEnds(t *testing.T) {
	dashboard := mock.NewMockDashboardService(gomock.NewController(t))
	dashboard.EXPECT().Load(gomock.Any()).Return(models.Dashboard{}, apiclient.ErrRefreshFailed).Times(1)

	sink := newDashboardSink()
	p := NewDashboardPoller(dashboard, time.Millisecond, sink.put, logger.Nop())

	err := p.Run(context.Background())
	assert.ErrorIs(t, err, apiclient.ErrAuthentication)
	assert.Zero(t, sink.count())
}

func TestDashboardPoller_StopIdle(t *testing.T) {
	p := NewDashboardPoller(nil, 0, func(models.Dashboard) {}, logger.Nop())
	p.Stop()
	assert.Equal(t, config.DefaultPollInterval, p.interval)
}

func TestDashboardPoller_CancelledLoadIsNotAnError(t *testing.T) {
	dashboard := mock.NewMockDashboardService(gomock.NewController(t))

	ctx, cancel := context.WithCancel(context.Background())
	dashboard.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.Dashboard, error) {
		cancel()
		return models.Dashboard{}, errors.Join(apiclient.ErrTransport, ctx.Err())
	})

	p := NewDashboardPoller(dashboard, time.Hour, func(models.Dashboard) {}, logger.Nop())
	assert.NoError(t, p.Run(ctx))
}
