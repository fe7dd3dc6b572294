package handlers

import (
	"context"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockMonitoring struct {
	state models.TrackerState
	err   error
	calls int
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.TrackerState, error) {
	m.calls++
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.TrackerEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.TrackerEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockPoller struct {
	band  models.DistanceBand
	err   error
	calls int
}

func (m *mockPoller) Poll(ctx context.Context) (models.DistanceBand, error) {
	m.calls++
	return m.band, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
