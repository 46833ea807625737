package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-punch-tracker/models"
)

type memoryTokenStore struct {
	mu    sync.RWMutex
	token models.Token
}

// NewMemoryTokenStore returns a [TokenStore] that forgets the session when
// the process exits.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Load(context.Context) (models.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryTokenStore) Save(_ context.Context, token models.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryTokenStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = models.Token{}
	return nil
}
