package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// Emails are matched case-insensitively.
type userRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

func newUserRepository(db *memoryDB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: log}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	key := normalizeEmail(user.Email)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.usersByEmail[key]; ok {
		logger.FromContext(ctx).Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
		return models.User{}, ErrEmailAlreadyExists
	}

	r.db.nextUserID++
	user.UserID = r.db.nextUserID
	user.CreatedAt = r.db.now()
	user.Password = ""

	r.db.users[user.UserID] = user
	r.db.usersByEmail[key] = user.UserID

	return user, nil
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.usersByEmail[normalizeEmail(email)]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return r.db.users[id], nil
}

func (r *userRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
