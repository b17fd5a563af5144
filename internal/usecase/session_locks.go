package usecase

import "sync"

// sessionLocks hands out one mutex per session ID so read-modify-write
// sequences over the repositories cannot interleave across concurrent
// requests for the same session. Entries live as long as the session's
// repository state does.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the session's mutex and returns its release func.
func (l *sessionLocks) lock(sessionID string) func() {
	l.mu.Lock()
	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
