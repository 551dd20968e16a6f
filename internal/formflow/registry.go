package formflow

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry holds at most one live form session per (user, schema) pair.
// Sessions are internally synchronized; the registry only guards the lookup
// table, so long-running operations on one session never block another.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func sessionKey(userID uuid.UUID, schemaName string) string {
	return fmt.Sprintf("%s:%s", userID, schemaName)
}

// Put stores a session for the user and schema, replacing any previous one.
// The replaced session, if still open, is abandoned: its pending debounced
// save is cancelled so it can never write into the draft store the new
// session now owns, and its close callback does not fire.
func (r *Registry) Put(userID uuid.UUID, schemaName string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sessionKey(userID, schemaName)
	if prev, ok := r.sessions[key]; ok && prev != s {
		prev.abandon()
	}
	r.sessions[key] = s
}

// Get returns the live session for the key. ErrSessionClosed is returned
// both when no session exists and when the stored one has been closed.
func (r *Registry) Get(userID uuid.UUID, schemaName string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[sessionKey(userID, schemaName)]
	r.mu.RUnlock()
	if !ok || s.Closed() {
		return nil, ErrSessionClosed
	}
	return s, nil
}

// With looks up the session for the key and runs fn against it.
func (r *Registry) With(userID uuid.UUID, schemaName string, fn func(*Session) error) error {
	s, err := r.Get(userID, schemaName)
	if err != nil {
		return err
	}
	return fn(s)
}

// Remove drops the session for the key, if any.
func (r *Registry) Remove(userID uuid.UUID, schemaName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionKey(userID, schemaName))
}
