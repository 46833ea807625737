package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-punch-tracker/internal/adapter"
	"github.com/MKhiriev/go-punch-tracker/internal/apiclient"
	"github.com/MKhiriev/go-punch-tracker/internal/client"
	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/service"
	"github.com/MKhiriev/go-punch-tracker/internal/store"
	"github.com/MKhiriev/go-punch-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout is reserved for command output such as CSV exports
	fmt.Fprintln(os.Stderr, models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("punch-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create token store: %w", err)
	}
	defer storages.Close()

	api, err := apiclient.NewClient(cfg.Adapter, storages.TokenStore, log)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	api.SetSessionExpiredHandler(func(cause error) {
		log.Warn().Err(cause).Msg("session expired")
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	services := service.NewClientServices(adapter.NewHTTPTrainingAPI(api, log), api, log)

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}
