package service

import (
	"context"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/logger"
	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/netlink"
	"github.com/charan-271/ISS-Tracker/internal/observability"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

// PositionSource fetches the satellite's current coordinate.
type PositionSource interface {
	Fetch(ctx context.Context) (models.Coordinate, error)
}

// Renderer drives the indicator hardware. Render must return promptly; it is
// called on every run-loop pass.
type Renderer interface {
	Render(mode models.IndicatorMode, now time.Time)
	Signals() models.Signals
}

// Poller runs one fetch-decode-classify cycle and owns the distance
// thresholds. A failed poll leaves the indicator mode untouched.
type Poller interface {
	Poll(ctx context.Context) (models.DistanceBand, error)
}

// Monitoring exposes read-only tracker state (position, distance, band,
// mode, live pin signals).
type Monitoring interface {
	GetState(ctx context.Context) (models.TrackerState, error)
}

// EventLog exposes the bounded diagnostics feed with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.TrackerEvent, error)
}

// Tracker runs the cooperative run loop until ctx is canceled.
type Tracker interface {
	Run(ctx context.Context)
}

// Service aggregates all sub-services.
type Service struct {
	Poller
	Monitoring
	EventLog
	Tracker
}

// Deps carries everything the services are wired from.
type Deps struct {
	Source   PositionSource
	Link     netlink.Link
	Renderer Renderer
	State    *store.StateStore
	Events   *store.EventRing
	Log      *logger.Logger
	Metrics  *observability.TrackerCollector

	Observer   models.Coordinate
	NearKm     float64 // NEAR when distance <= NearKm
	ApproachKm float64 // APPROACHING when distance <= ApproachKm

	CheckInterval time.Duration // connectivity maintenance period
	PollInterval  time.Duration // position poll period
	IdleDelay     time.Duration // yield between loop passes
}

// NewService wires the stores, link, source, and renderer into concrete
// services.
func NewService(d Deps) *Service {
	poller := NewPollerService(d)
	return &Service{
		Poller:     poller,
		Monitoring: NewMonitoringService(d.State, d.Renderer),
		EventLog:   NewEventLogService(d.Events),
		Tracker:    NewTrackerLoop(d, poller),
	}
}
