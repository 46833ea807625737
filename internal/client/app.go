package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/service"
	"github.com/MKhiriev/go-punch-tracker/internal/workers"
	"github.com/MKhiriev/go-punch-tracker/models"
)

const (
	commandDashboard = "dashboard"
	commandExport    = "export"
	commandLogout    = "logout"
)

type App struct {
	services *service.ClientServices

	account config.ClientAccount
	workers config.ClientWorkers
	command []string

	out    io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services: services,
		account:  cfg.Account,
		workers:  cfg.Workers,
		command:  cfg.Command,
		out:      out,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	name, args := commandDashboard, []string(nil)
	if len(a.command) > 0 {
		name, args = a.command[0], a.command[1:]
	}

	switch name {
	case commandDashboard:
		if err := a.signIn(ctx); err != nil {
			return err
		}
		return a.runDashboard(ctx)
	case commandExport:
		sessionID, err := parseSessionID(args)
		if err != nil {
			return err
		}
		if err = a.signIn(ctx); err != nil {
			return err
		}
		return a.services.ExportService.PunchesCSV(ctx, sessionID, a.out)
	case commandLogout:
		return a.services.AuthService.Logout(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

// signIn reuses a persisted session and falls back to the configured
// account credentials.
func (a *App) signIn(ctx context.Context) error {
	restored, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if restored {
		a.logger.Info().Msg("session restored")
		return nil
	}

	if a.account.Email == "" || a.account.Password == "" {
		return ErrNoCredentials
	}

	user, err := a.services.AuthService.Login(ctx, models.Credentials{
		Email:    a.account.Email,
		Password: a.account.Password,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("logged in")
	return nil
}

func (a *App) runDashboard(ctx context.Context) error {
	poller := workers.NewDashboardPoller(a.services.DashboardService, a.workers.PollInterval, a.render, a.logger)
	return workers.NewWorkers(poller).Run(ctx)
}

func (a *App) render(d models.Dashboard) {
	if err := renderDashboard(a.out, d); err != nil {
		a.logger.Err(err).Msg("render dashboard")
	}
}

func renderDashboard(out io.Writer, d models.Dashboard) error {
	name := d.Profile.Username
	if name == "" {
		name = d.Profile.Email
	}
	fmt.Fprintf(out, "%s (%s), %d sessions\n", name, d.Profile.Role, d.Sessions.Total)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTARTED\tSTATUS")
	for _, s := range d.Sessions.Sessions {
		status := "active"
		if !s.Active() {
			status = "ended"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.StartedAt.Local().Format("2006-01-02 15:04"), status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if l := d.Latest; l != nil {
		fmt.Fprintf(out, "latest session %d: %d punches, avg speed %.2f, %s\n",
			l.SessionID, l.TotalPunches, l.AverageSpeed, l.Classification)
	}
	_, err := fmt.Fprintln(out)
	return err
}

func parseSessionID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: usage: export <session-id>", ErrInvalidSessionID)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSessionID, args[0])
	}
	return id, nil
}
