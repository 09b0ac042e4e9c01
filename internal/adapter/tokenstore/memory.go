package tokenstore

import (
	"sync"

	"github.com/vendomart/vendordash/internal/core/domain"
)

// Memory holds the session bearer token for the signed-in vendor. The token
// is minted and validated by the platform backend; this store only keeps it
// for the lifetime of the process.
type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", domain.ErrNoToken
	}
	return m.token, nil
}

func (m *Memory) Set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
