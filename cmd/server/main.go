package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/handler"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/server"
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
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("punch-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("cache", cfg.Cache.RedisAddress != "").
		Msg("received configs")

	storages := store.NewStorages(context.Background(), cfg.Cache, log)
	defer storages.Close()

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
