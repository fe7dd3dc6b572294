package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

// LogFilter selects diagnostics events by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "LINK_UP", "LINK_DOWN", "TELEMETRY", "BAND_CHANGE", "ERROR"
}

type EventLogService struct {
	events *store.EventRing
}

func NewEventLogService(events *store.EventRing) *EventLogService {
	return &EventLogService{events: events}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// List returns filtered events in append order.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.TrackerEvent, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	typ := strings.TrimSpace(strings.ToUpper(f.Type))
	return s.events.List(from, to, typ), nil
}
