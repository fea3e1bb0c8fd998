package store

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/voxprep/voxprep/internal/models"
)

// SessionStore is the process-local session map. A durable implementation can
// be swapped in behind the same interface later.
type SessionStore interface {
	Get(id string) (*models.Session, bool)
	Put(s *models.Session)
	Delete(id string)
}

type memoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore keeps sessions in memory for the given TTL. Sessions are
// lost on restart; that is the contract, not a limitation.
func NewMemoryStore(ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &memoryStore{c: gocache.New(ttl, ttl/4)}
}

func (m *memoryStore) Get(id string) (*models.Session, bool) {
	v, ok := m.c.Get(id)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.Session)
	return s, ok
}

func (m *memoryStore) Put(s *models.Session) {
	m.c.Set(s.ID, s, gocache.DefaultExpiration)
}

func (m *memoryStore) Delete(id string) {
	m.c.Delete(id)
}
