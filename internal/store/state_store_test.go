package store

import (
	"testing"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

func TestStateStore_StartsOffWithNoFix(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	st := s.Load()
	if st.Mode != models.ModeOff {
		t.Errorf("initial Mode = %q, want %q", st.Mode, models.ModeOff)
	}
	if st.Satellite != nil {
		t.Errorf("initial Satellite = %+v, want nil", st.Satellite)
	}
}

func TestStateStore_SaveReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	sat := models.Coordinate{Latitude: 10, Longitude: 20}
	s.Save(models.TrackerState{
		Satellite:  &sat,
		DistanceKm: 432.1,
		Band:       models.BandNear,
		Mode:       models.ModeBlinkGreenFast,
		UpdatedAt:  time.Now().UTC(),
	})

	st := s.Load()
	if st.Satellite == nil || *st.Satellite != sat {
		t.Fatalf("Satellite = %+v, want %+v", st.Satellite, sat)
	}
	if st.Band != models.BandNear || st.Mode != models.ModeBlinkGreenFast {
		t.Errorf("band/mode = %q/%q", st.Band, st.Mode)
	}
	if s.Mode() != models.ModeBlinkGreenFast {
		t.Errorf("Mode() = %q", s.Mode())
	}
}

// Load must hand out a copy: mutating the returned snapshot (or its
// satellite pointer) must not leak back into the store.
func TestStateStore_LoadReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	sat := models.Coordinate{Latitude: 1, Longitude: 2}
	s.Save(models.TrackerState{Satellite: &sat, Mode: models.ModeBlinkBlue})

	got := s.Load()
	got.Satellite.Latitude = 99
	got.Mode = models.ModeOff

	reread := s.Load()
	if reread.Satellite.Latitude != 1 {
		t.Errorf("store satellite mutated through snapshot: %+v", reread.Satellite)
	}
	if reread.Mode != models.ModeBlinkBlue {
		t.Errorf("store mode mutated through snapshot: %q", reread.Mode)
	}
}

func TestStateStore_SetLinkUpKeepsRestOfSnapshot(t *testing.T) {
	t.Parallel()

	s := NewStateStore()
	s.Save(models.TrackerState{Mode: models.ModeSteadyRed, DistanceKm: 1500})

	s.SetLinkUp(true)
	st := s.Load()
	if !st.LinkUp {
		t.Error("LinkUp not set")
	}
	if st.Mode != models.ModeSteadyRed || st.DistanceKm != 1500 {
		t.Errorf("SetLinkUp clobbered snapshot: %+v", st)
	}
}
