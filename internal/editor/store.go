package editor

import (
	"sync"

	"github.com/google/uuid"

	"clipforge/internal/logger"
	"clipforge/internal/media"
	"clipforge/internal/timescale"
)

// Store hosts the live editing sessions, keyed by session id. Sessions
// are ephemeral: nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	scale    timescale.Scale
	resolver *media.Resolver
	log      *logger.Logger
}

func NewStore(scale timescale.Scale, resolver *media.Resolver, log *logger.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		scale:    scale,
		resolver: resolver,
		log:      log,
	}
}

// Create opens a fresh session.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.scale, st.resolver, st.log)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	st.log.Info("session created", "session_id", s.ID())
	return s
}

// Get looks a session up by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete closes a session. Reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}
