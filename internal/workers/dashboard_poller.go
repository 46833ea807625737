// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/apiclient"
	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/service"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// DashboardPoller reloads the dashboard on a ticker and hands every result to
// a sink. Transient failures are logged and retried on the next tick; an
// authentication failure ends the poller because the session is gone.
type DashboardPoller struct {
	dashboard service.DashboardService
	interval  time.Duration
	sink      func(models.Dashboard)

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewDashboardPoller creates an idle poller. A non-positive interval falls
// back to [config.DefaultPollInterval].
func NewDashboardPoller(dashboard service.DashboardService, interval time.Duration, sink func(models.Dashboard), log *logger.Logger) *DashboardPoller {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return &DashboardPoller{
		dashboard: dashboard,
		interval:  interval,
		sink:      sink,
		logger:    log,
	}
}

// Run implements [Worker]. The dashboard is loaded immediately and then every
// interval until ctx is cancelled, Stop is called or the session ends.
func (p *DashboardPoller) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		if err := p.poll(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("dashboard poller stopped")
			return nil
		case <-t.C:
		}
	}
}

// Stop ends a running Run. It is a no-op when the poller is idle.
func (p *DashboardPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (p *DashboardPoller) poll(ctx context.Context) error {
	dash, err := p.dashboard.Load(ctx)
	switch {
	case err == nil:
		p.sink(dash)
		return nil
	case errors.Is(err, apiclient.ErrAuthentication):
		p.logger.Warn().Err(err).Msg("session ended, dashboard poller exits")
		return err
	case ctx.Err() != nil:
		return nil
	default:
		p.logger.Err(err).Msg("dashboard reload failed")
		return nil
	}
}
