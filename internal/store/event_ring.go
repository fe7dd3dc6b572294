package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

// DefaultRingCapacity bounds the in-memory diagnostics feed. The process
// keeps no history on disk, so the ring drops its oldest entries once full.
const DefaultRingCapacity = 512

// EventRing is a bounded append-only log of tracker events.
type EventRing struct {
	mu     sync.RWMutex
	cap    int
	events []models.TrackerEvent
}

// NewEventRing builds a ring with the given capacity; non-positive values
// select DefaultRingCapacity.
func NewEventRing(capacity int) *EventRing {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &EventRing{
		cap:    capacity,
		events: make([]models.TrackerEvent, 0, capacity),
	}
}

// Append records an event. Empty EventID and zero OccurredAt are filled in.
func (r *EventRing) Append(e models.TrackerEvent) {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}
	e.Type = strings.ToUpper(strings.TrimSpace(e.Type))

	r.mu.Lock()
	if len(r.events) == r.cap {
		copy(r.events, r.events[1:])
		r.events = r.events[:r.cap-1]
	}
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// List returns events filtered by [from, to] (inclusive, zero means
// unbounded) and/or type, in append order.
func (r *EventRing) List(from, to time.Time, typ string) []models.TrackerEvent {
	typ = strings.ToUpper(strings.TrimSpace(typ))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TrackerEvent, 0, len(r.events))
	for _, e := range r.events {
		if !from.IsZero() && e.OccurredAt.Before(from.UTC()) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to.UTC()) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Len returns the number of retained events.
func (r *EventRing) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}
