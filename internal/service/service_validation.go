package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-punch-tracker/internal/validators"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// authValidationService validates signup and login payloads before
// delegating to inner.
type authValidationService struct {
	AuthService
	validator validators.Validator
}

// NewAuthValidationService wraps inner with payload validation. Failures are
// reported as ErrInvalidDataProvided.
func NewAuthValidationService(inner AuthService, validator validators.Validator) AuthService {
	return &authValidationService{AuthService: inner, validator: validator}
}

func (v *authValidationService) Signup(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, invalid(err)
	}
	return v.AuthService.Signup(ctx, user)
}

func (v *authValidationService) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.TokenResponse{}, invalid(err)
	}
	return v.AuthService.Login(ctx, creds)
}

// trainingValidationService validates write payloads before delegating to
// inner. Reads pass through.
type trainingValidationService struct {
	TrainingService
	validator validators.Validator
}

func NewTrainingValidationService(inner TrainingService, validator validators.Validator) TrainingService {
	return &trainingValidationService{TrainingService: inner, validator: validator}
}

func (v *trainingValidationService) CreateSession(ctx context.Context, userID int64, req models.SessionCreate) (models.TrainingSession, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TrainingSession{}, invalid(err)
	}
	return v.TrainingService.CreateSession(ctx, userID, req)
}

func (v *trainingValidationService) UpdateSession(ctx context.Context, userID, sessionID int64, update models.SessionUpdate) (models.TrainingSession, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.TrainingSession{}, invalid(err)
	}
	return v.TrainingService.UpdateSession(ctx, userID, sessionID, update)
}

func (v *trainingValidationService) LogPunch(ctx context.Context, userID int64, req models.PunchCreate) (models.Punch, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Punch{}, invalid(err)
	}
	return v.TrainingService.LogPunch(ctx, userID, req)
}

// coachValidationService validates invitation payloads before delegating to
// inner.
type coachValidationService struct {
	CoachService
	validator validators.Validator
}

func NewCoachValidationService(inner CoachService, validator validators.Validator) CoachService {
	return &coachValidationService{CoachService: inner, validator: validator}
}

func (v *coachValidationService) Invite(ctx context.Context, coachID int64, invite models.CoachInvite) (models.Invitation, error) {
	if err := v.validator.Validate(ctx, invite); err != nil {
		return models.Invitation{}, invalid(err)
	}
	return v.CoachService.Invite(ctx, coachID, invite)
}

func (v *coachValidationService) Accept(ctx context.Context, athleteID int64, accept models.InviteAccept) (models.CoachLink, error) {
	if err := v.validator.Validate(ctx, accept); err != nil {
		return models.CoachLink{}, invalid(err)
	}
	return v.CoachService.Accept(ctx, athleteID, accept)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
