package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/service"
	"github.com/MKhiriev/go-punch-tracker/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.BuildInfo

	// limiter is nil when rate limiting is disabled.
	limiter        *rate.Limiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerTransport, buildInfo models.BuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	return h
}
