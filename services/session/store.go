package session

import "sync"

// Store holds per-user sessions with create-on-first-access semantics.
// The map lock is held only for lookup and insert, so unrelated users
// never contend with each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for userID, creating it lazily.
func (st *Store) GetOrCreate(userID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s = newSession(userID)
	st.sessions[userID] = s
	return s
}

// Reset clears the transcript and emergency state for userID. Used when
// a blank inbound message signals a new conversation.
func (st *Store) Reset(userID string) {
	st.GetOrCreate(userID).reset()
}
