// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// This is a lightweight persistence layer for ephemeral solving sessions;
// state is intentionally lost when the process restarts (the assistant
// does not persist across sessions).
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - ErrNotFound is returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle-helper/internal/session"
)

// ErrNotFound reports a lookup for an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for solving sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session is unknown.
	Get(ctx context.Context, id string) (*session.Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex                // guards sessions map
	sessions map[string]*session.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
