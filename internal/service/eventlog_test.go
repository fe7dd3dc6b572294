package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

func seedEventRing(t *testing.T, base time.Time) *store.EventRing {
	t.Helper()
	ring := store.NewEventRing(16)
	for i, typ := range []string{
		models.EventLinkUp,
		models.EventTelemetry,
		models.EventBandChange,
		models.EventError,
		models.EventTelemetry,
	} {
		ring.Append(models.TrackerEvent{
			OccurredAt:  base.Add(time.Duration(i) * time.Minute),
			Type:        typ,
			Description: typ,
		})
	}
	return ring
}

func TestEventLog_List_All(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc := NewEventLogService(seedEventRing(t, base))

	got, err := svc.List(context.Background(), LogFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
}

func TestEventLog_List_Filters(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc := NewEventLogService(seedEventRing(t, base))

	cases := []struct {
		name   string
		filter LogFilter
		want   int
	}{
		{"by_type", LogFilter{Type: models.EventTelemetry}, 2},
		{"by_type_lowercase", LogFilter{Type: "telemetry"}, 2},
		{"from_inclusive", LogFilter{From: base.Add(3 * time.Minute)}, 2},
		{"to_inclusive", LogFilter{To: base.Add(1 * time.Minute)}, 2},
		{"range_and_type", LogFilter{From: base, To: base.Add(2 * time.Minute), Type: models.EventTelemetry}, 1},
		{"empty_window", LogFilter{From: base.Add(10 * time.Minute), To: base.Add(11 * time.Minute)}, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("len = %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestEventLog_List_InvalidRange(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc := NewEventLogService(seedEventRing(t, base))

	_, err := svc.List(context.Background(), LogFilter{
		From: base.Add(time.Hour),
		To:   base,
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("err = %v, want errInvalidTimeRange", err)
	}
}
