package chatService

import (
	"sync"
	"time"

	"HorologeGolang/pkg/chatbot"
)

// sessionRegistry routes requests to per-conversation sessions. Sessions
// themselves are single-threaded; the registry only guards the map and
// serializes access per entry. Idle entries are swept on access so the map
// cannot grow unbounded.
type sessionRegistry struct {
	mu         sync.Mutex
	entries    map[string]*sessionEntry
	newSession func() chatbot.ISession
	idleTTL    time.Duration
}

type sessionEntry struct {
	mu       sync.Mutex
	session  chatbot.ISession
	lastSeen time.Time
}

func newSessionRegistry(newSession func() chatbot.ISession, idleTTL time.Duration) *sessionRegistry {
	return &sessionRegistry{
		entries:    make(map[string]*sessionEntry),
		newSession: newSession,
		idleTTL:    idleTTL,
	}
}

// acquire returns the entry for id, creating it when create is set. The
// entry comes back locked; callers must release it.
func (r *sessionRegistry) acquire(id string, create bool) (*sessionEntry, bool) {
	r.mu.Lock()
	r.sweepLocked()

	entry, ok := r.entries[id]
	if !ok {
		if !create {
			r.mu.Unlock()
			return nil, false
		}
		entry = &sessionEntry{session: r.newSession()}
		r.entries[id] = entry
	}
	entry.lastSeen = time.Now()
	r.mu.Unlock()

	entry.mu.Lock()
	return entry, true
}

func (e *sessionEntry) release() {
	e.mu.Unlock()
}

func (r *sessionRegistry) sweepLocked() {
	cutoff := time.Now().Add(-r.idleTTL)
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
		}
	}
}
