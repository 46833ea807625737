package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-punch-tracker/internal/adapter"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// DashboardSessions is the number of recent sessions shown on the dashboard.
const DashboardSessions = 5

type dashboardService struct {
	api adapter.TrainingAPI

	// latestSessionID is the newest session seen by the previous Load; its
	// analytics are fetched alongside the profile and the session list.
	latestSessionID atomic.Int64

	logger *logger.Logger
}

func NewDashboardService(api adapter.TrainingAPI, logger *logger.Logger) DashboardService {
	return &dashboardService{api: api, logger: logger}
}

// Load fetches the profile, the recent sessions and the analytics of the
// newest session concurrently. If the newest session changed since the
// previous Load its analytics are fetched once more afterwards.
func (d *dashboardService) Load(ctx context.Context) (models.Dashboard, error) {
	var (
		dash       models.Dashboard
		prefetched *models.SessionAnalytics
	)

	known := d.latestSessionID.Load()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := d.api.Me(gctx)
		if err != nil {
			return err
		}
		dash.Profile = profile
		return nil
	})
	g.Go(func() error {
		list, err := d.api.ListSessions(gctx, DashboardSessions, 0)
		if err != nil {
			return err
		}
		dash.Sessions = list
		return nil
	})
	if known != 0 {
		g.Go(func() error {
			analytics, err := d.api.SessionAnalytics(gctx, known)
			if errors.Is(err, adapter.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			prefetched = &analytics
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, fmt.Errorf("error loading dashboard: %w", err)
	}

	if len(dash.Sessions.Sessions) == 0 {
		d.latestSessionID.Store(0)
		return dash, nil
	}

	latest := dash.Sessions.Sessions[0].ID
	d.latestSessionID.Store(latest)

	if prefetched != nil && prefetched.SessionID == latest {
		dash.Latest = prefetched
		return dash, nil
	}

	d.logger.Debug().Int64("session_id", latest).Msg("newest session changed, fetching its analytics")
	analytics, err := d.api.SessionAnalytics(ctx, latest)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error loading analytics of session %d: %w", latest, err)
	}
	dash.Latest = &analytics

	return dash, nil
}
