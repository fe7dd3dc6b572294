// Package store holds the tracker's shared mutable state. The run loop is
// the only writer; the HTTP and WebSocket surfaces read snapshots. The
// mutexes here are the explicit locking surface between those goroutines.
package store

import (
	"sync"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

// StateStore keeps the latest TrackerState snapshot in memory.
type StateStore struct {
	mu sync.RWMutex
	st models.TrackerState
}

// NewStateStore starts with all indicators off and no satellite fix.
func NewStateStore() *StateStore {
	return &StateStore{st: models.TrackerState{Mode: models.ModeOff}}
}

// Load returns a copy of the current snapshot.
func (s *StateStore) Load() models.TrackerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.st
	if s.st.Satellite != nil {
		sat := *s.st.Satellite
		st.Satellite = &sat
	}
	return st
}

// Save replaces the snapshot wholesale.
func (s *StateStore) Save(st models.TrackerState) {
	s.mu.Lock()
	s.st = st
	s.mu.Unlock()
}

// Mode returns the current indicator mode.
func (s *StateStore) Mode() models.IndicatorMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Mode
}

// SetLinkUp records connectivity without touching the rest of the snapshot.
func (s *StateStore) SetLinkUp(up bool) {
	s.mu.Lock()
	s.st.LinkUp = up
	s.mu.Unlock()
}
