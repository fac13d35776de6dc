// internal/pkg/session/memory_store.go
package session

import (
	"context"
	"sync"

	"jeyamcars-service/internal/domain/auth"
)

// MemoryStore is an in-process Store used in tests and when no Redis
// is configured. Contents do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	session *auth.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (*auth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *auth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.session = &copied
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
