package mux

import (
	"sync"

	"cribbage-server/pkg/cribbage"
)

// liveGame pairs a session with the lock that serializes requests
// against it
type liveGame struct {
	mu       sync.Mutex
	session  *cribbage.Session
	recorded bool
}

// gameStore holds the in-flight sessions
type gameStore struct {
	mu    sync.RWMutex
	games map[string]*liveGame
}

func newGameStore() *gameStore {
	return &gameStore{
		games: make(map[string]*liveGame),
	}
}

func (s *gameStore) get(id string) (*liveGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	return game, ok
}

// put registers the session. Returns false if the ID is already taken.
func (s *gameStore) put(session *cribbage.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[session.ID()]; ok {
		return false
	}

	s.games[session.ID()] = &liveGame{session: session}
	return true
}

// remove drops the session. Returns false if it wasn't there.
func (s *gameStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return false
	}

	delete(s.games, id)
	return true
}
