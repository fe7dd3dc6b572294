package service

import (
	"context"

	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

// MonitoringService composes the state snapshot with the live pin levels.
type MonitoringService struct {
	state    *store.StateStore
	renderer Renderer
}

func NewMonitoringService(state *store.StateStore, renderer Renderer) *MonitoringService {
	return &MonitoringService{state: state, renderer: renderer}
}

// GetState returns the latest tracker snapshot. Before the first successful
// poll it reports mode OFF with no satellite fix.
func (s *MonitoringService) GetState(ctx context.Context) (models.TrackerState, error) {
	st := s.state.Load()
	if s.renderer != nil {
		st.Signals = s.renderer.Signals()
	}
	return st, nil
}
