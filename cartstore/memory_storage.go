package cartstore

import (
	"context"
	"sync"

	"github.com/i-iangurazov/roksosh/models"
)

// MemoryStorage holds the snapshot in process memory. Used in tests and as a
// last-resort fallback.
type MemoryStorage struct {
	mu   sync.Mutex
	snap *models.CartSnapshot
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(_ context.Context) (models.CartSnapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return models.CartSnapshot{}, false, nil
	}
	return *m.snap, true, nil
}

func (m *MemoryStorage) Save(_ context.Context, snap models.CartSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &snap
	return nil
}
