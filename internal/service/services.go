package service

import (
	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/store"
	"github.com/MKhiriev/go-punch-tracker/internal/validators"
)

// Services groups the development server's business logic.
type Services struct {
	AuthService     AuthService
	TrainingService TrainingService
	CoachService    CoachService
}

// NewServices builds the server services with payload validation in front of
// each of them.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	validator := validators.NewTrainingValidator()

	return &Services{
		AuthService: NewAuthValidationService(
			NewAuthService(storages.UserRepository, storages.RefreshTokenRepository, cfg.Auth, logger),
			validator,
		),
		TrainingService: NewTrainingValidationService(
			NewTrainingService(storages.TrainingRepository, storages.AnalyticsCache, cfg.Cache.TTL, logger),
			validator,
		),
		CoachService: NewCoachValidationService(
			NewCoachService(storages.UserRepository, storages.CoachRepository, storages.TrainingRepository, logger),
			validator,
		),
	}
}
