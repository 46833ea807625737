package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-punch-tracker/models"
)

// memoryDB is the shared in-memory backing of the development server's
// repositories. All maps are guarded by mu.
type memoryDB struct {
	mu sync.RWMutex

	nextUserID    int64
	nextSessionID int64
	nextPunchID   int64

	users         map[int64]models.User
	usersByEmail  map[string]int64
	sessions      map[int64]models.TrainingSession
	punches       map[int64][]models.Punch // by session id
	refreshTokens map[string]models.RefreshToken
	invitations   map[string]models.Invitation // by code
	coachLinks    map[int64][]models.CoachLink // by coach id

	now func() time.Time
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:         make(map[int64]models.User),
		usersByEmail:  make(map[string]int64),
		sessions:      make(map[int64]models.TrainingSession),
		punches:       make(map[int64][]models.Punch),
		refreshTokens: make(map[string]models.RefreshToken),
		invitations:   make(map[string]models.Invitation),
		coachLinks:    make(map[int64][]models.CoachLink),
		now:           func() time.Time { return time.Now().UTC() },
	}
}
