package service

import (
	"context"
	"testing"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
	"github.com/charan-271/ISS-Tracker/internal/store"
)

type stubRenderer struct {
	signals models.Signals
}

func (r *stubRenderer) Render(models.IndicatorMode, time.Time) {}
func (r *stubRenderer) Signals() models.Signals                { return r.signals }

func TestMonitoring_GetState_BeforeFirstPoll(t *testing.T) {
	t.Parallel()

	st := store.NewStateStore()
	svc := NewMonitoringService(st, &stubRenderer{})

	got, err := svc.GetState(context.Background())
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if got.Mode != models.ModeOff {
		t.Fatalf("mode = %q, want %q", got.Mode, models.ModeOff)
	}
	if got.Satellite != nil {
		t.Fatalf("satellite = %+v, want nil before first fix", got.Satellite)
	}
}

func TestMonitoring_GetState_ComposesSignals(t *testing.T) {
	t.Parallel()

	st := store.NewStateStore()
	st.Save(models.TrackerState{
		Satellite:  &models.Coordinate{Latitude: 10, Longitude: 20},
		DistanceKm: 450,
		Band:       models.BandNear,
		Mode:       models.ModeBlinkGreenFast,
		LinkUp:     true,
		UpdatedAt:  time.Now().UTC(),
	})
	r := &stubRenderer{signals: models.Signals{Green: true}}
	svc := NewMonitoringService(st, r)

	got, err := svc.GetState(context.Background())
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if got.Band != models.BandNear || got.Mode != models.ModeBlinkGreenFast {
		t.Fatalf("state = %+v", got)
	}
	if !got.Signals.Green || got.Signals.Red || got.Signals.Blue {
		t.Fatalf("signals = %+v, want green only", got.Signals)
	}
}
