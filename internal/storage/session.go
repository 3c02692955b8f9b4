package storage

import (
	"sync"

	"github.com/dkazarau/histbot/internal/domain/entities"
)

// UserSession holds all per-user quiz state: the active question, a running
// marathon, the consumed fact ids per kind and a pending delivery input flow.
// The embedded mutex serializes state mutations for a single user; callers
// lock the session around every read-modify-write.
type UserSession struct {
	sync.Mutex

	ActiveQuestion *entities.Question
	Marathon       *entities.MarathonSession
	PendingInput   string // e.g. "add_event", "add_figure"; empty when idle
	consumed       map[entities.FactKind]map[int]struct{}
}

// ConsumedFor returns the consumed-id set for a fact kind, creating it on
// first use. Caller must hold the session lock.
func (s *UserSession) ConsumedFor(kind entities.FactKind) map[int]struct{} {
	if s.consumed == nil {
		s.consumed = make(map[entities.FactKind]map[int]struct{})
	}
	if s.consumed[kind] == nil {
		s.consumed[kind] = make(map[int]struct{})
	}
	return s.consumed[kind]
}

// ResetConsumed clears the consumed-id set for a fact kind.
// Caller must hold the session lock.
func (s *UserSession) ResetConsumed(kind entities.FactKind) {
	if s.consumed != nil {
		delete(s.consumed, kind)
	}
}

// SessionStorage provides in-memory per-user session state keyed by user ID.
// It is created once at process start; entries live for the process lifetime.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*UserSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*UserSession),
	}
}

// Get returns the session for a user, creating it on first access.
func (s *SessionStorage) Get(userID int64) *UserSession {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}
	sess = &UserSession{}
	s.sessions[userID] = sess
	return sess
}

// Delete removes a user's session.
func (s *SessionStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
