package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/store"
	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// tokenTypeBearer is the token_type of every issued pair.
const tokenTypeBearer = "bearer"

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes. Access tokens are short-lived HS256
// JWTs; refresh tokens are opaque UUIDs of which only the sha256 digest is
// kept, rotated on every use.
type authService struct {
	userRepository    store.UserRepository
	refreshRepository store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify access tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every access token.
	// Tokens whose issuer does not match are rejected.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	uuid *utils.UUIDGenerator
	now  func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repositories with
// token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, refreshTokens store.RefreshTokenRepository, cfg config.ServerAuth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       users,
		refreshRepository:    refreshTokens,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		uuid:                 utils.NewUUIDGenerator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// Signup creates a new account.
//
// Email and password are required; the role defaults to athlete. Returns the
// stored user without any password material or:
//   - ErrInvalidDataProvided on missing fields or an unknown role.
//   - A wrapped [store.ErrEmailAlreadyExists] if the email is taken.
func (a *authService) Signup(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	switch user.Role {
	case "":
		user.Role = models.RoleAthlete
	case models.RoleAthlete, models.RoleCoach:
	default:
		log.Error().Str("role", user.Role).Msg("unknown role")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and issues a token pair. An unknown email and
// a wrong password are both reported as ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.TokenResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", creds.Email).Msg("login for unknown email")
		return models.TokenResponse{}, ErrWrongCredentials
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.TokenResponse{}, ErrWrongCredentials
	}

	return a.issue(ctx, user.UserID)
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// revoked; presenting it again fails with ErrInvalidRefreshToken.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	if refreshToken == "" {
		return models.TokenResponse{}, ErrInvalidRefreshToken
	}

	nextToken := a.uuid.Generate()
	old, err := a.refreshRepository.RotateRefreshToken(ctx, utils.HashToken(refreshToken), models.RefreshToken{
		TokenHash: utils.HashToken(nextToken),
		ExpiresAt: a.now().Add(a.refreshTokenDuration),
	})
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		return models.TokenResponse{}, ErrInvalidRefreshToken
	}
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("rotate refresh token: %w", err)
	}

	accessToken, _, err := utils.GenerateAccessToken(a.tokenIssuer, old.UserID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", old.UserID).Msg("refresh token rotated")

	return models.TokenResponse{AccessToken: accessToken, RefreshToken: nextToken, TokenType: tokenTypeBearer}, nil
}

// Logout revokes refreshToken. Unknown tokens are ignored so that logging out
// twice is not an error.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrInvalidDataProvided
	}

	err := a.refreshRepository.RevokeRefreshToken(ctx, utils.HashToken(refreshToken))
	if err != nil && !errors.Is(err, store.ErrRefreshTokenNotFound) {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// ParseAccessToken validates the signature, issuer and expiry of
// accessToken. Any failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (int64, error) {
	userID, err := utils.ValidateAccessToken(accessToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return 0, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return userID, nil
}

func (a *authService) issue(ctx context.Context, userID int64) (models.TokenResponse, error) {
	accessToken, _, err := utils.GenerateAccessToken(a.tokenIssuer, userID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken := a.uuid.Generate()
	err = a.refreshRepository.SaveRefreshToken(ctx, models.RefreshToken{
		TokenHash: utils.HashToken(refreshToken),
		UserID:    userID,
		ExpiresAt: a.now().Add(a.refreshTokenDuration),
	})
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("save refresh token: %w", err)
	}

	return models.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken, TokenType: tokenTypeBearer}, nil
}
