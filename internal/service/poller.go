package service

import (
	"context"
	"errors"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/geo"
	"github.com/charan-271/ISS-Tracker/internal/logger"
	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/observability"
	"github.com/charan-271/ISS-Tracker/internal/opennotify"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

// Default distance thresholds in kilometers.
const (
	DefaultNearKm     = 500.0
	DefaultApproachKm = 1000.0
)

// PollerService runs one fetch-decode-classify cycle per call and owns the
// distance thresholds.
type PollerService struct {
	source   PositionSource
	observer models.Coordinate

	nearKm     float64
	approachKm float64

	state   *store.StateStore
	events  *store.EventRing
	log     *logger.Logger
	metrics *observability.TrackerCollector
}

// NewPollerService builds the poller from the shared deps. Non-positive
// thresholds select the defaults.
func NewPollerService(d Deps) *PollerService {
	nearKm, approachKm := d.NearKm, d.ApproachKm
	if nearKm <= 0 {
		nearKm = DefaultNearKm
	}
	if approachKm <= nearKm {
		approachKm = DefaultApproachKm
	}
	return &PollerService{
		source:     d.Source,
		observer:   d.Observer,
		nearKm:     nearKm,
		approachKm: approachKm,
		state:      d.State,
		events:     d.Events,
		log:        d.Log,
		metrics:    d.Metrics,
	}
}

// classify maps a distance to its band. The bands partition [0, +inf):
// boundaries are inclusive on the lower band.
func (s *PollerService) classify(distanceKm float64) models.DistanceBand {
	switch {
	case distanceKm <= s.nearKm:
		return models.BandNear
	case distanceKm <= s.approachKm:
		return models.BandApproaching
	default:
		return models.BandFar
	}
}

// Poll fetches the satellite position, classifies its distance from the
// observer, and updates the shared state and indicator mode. On any failure
// the previous state and indicator mode are left untouched.
func (s *PollerService) Poll(ctx context.Context) (models.DistanceBand, error) {
	start := time.Now()

	pos, err := s.source.Fetch(ctx)
	if err != nil {
		s.recordFailure(err)
		return "", err
	}

	distance := geo.DistanceKm(s.observer, pos)
	band := s.classify(distance)
	mode := band.Mode()
	now := time.Now().UTC()

	prev := s.state.Load()
	s.state.Save(models.TrackerState{
		Satellite:  &pos,
		DistanceKm: distance,
		Band:       band,
		Mode:       mode,
		LinkUp:     prev.LinkUp,
		UpdatedAt:  now,
	})

	if s.log != nil {
		s.log.Infow("satellite position",
			"lat", pos.Latitude, "lon", pos.Longitude,
			"distance_km", distance, "band", band, "mode", mode)
	}
	s.events.Append(models.TrackerEvent{
		Type:        models.EventTelemetry,
		Description: "Position fix " + pos.String(),
		Metadata: map[string]any{
			"latitude":    pos.Latitude,
			"longitude":   pos.Longitude,
			"distance_km": distance,
			"band":        band,
		},
	})
	if prev.Band != band {
		s.events.Append(models.TrackerEvent{
			Type:        models.EventBandChange,
			Description: "Distance band changed to " + string(band),
			Metadata:    map[string]any{"from": prev.Band, "to": band, "mode": mode},
		})
	}

	if s.metrics != nil {
		s.metrics.PollsTotal.WithLabelValues(observability.PollResultOK).Inc()
		s.metrics.PollDuration.Observe(time.Since(start).Seconds())
		s.metrics.DistanceKm.Set(distance)
		s.metrics.ObserveBand(band)
	}
	return band, nil
}

// recordFailure logs and counts a failed poll without touching state.
func (s *PollerService) recordFailure(err error) {
	result := observability.PollResultTransportError
	var de *opennotify.DecodeError
	if errors.As(err, &de) {
		result = observability.PollResultDecodeError
	}

	if s.log != nil {
		s.log.Warnw("position poll failed", "err", err, "result", result)
	}
	s.events.Append(models.TrackerEvent{
		Type:        models.EventError,
		Description: "Position poll failed",
		Metadata:    map[string]any{"error": err.Error(), "kind": result},
	})
	if s.metrics != nil {
		s.metrics.PollsTotal.WithLabelValues(result).Inc()
	}
}
