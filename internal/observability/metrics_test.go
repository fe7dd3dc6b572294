package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

func TestNewTrackerCollector_RegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewTrackerCollector(reg)
	if err != nil {
		t.Fatalf("NewTrackerCollector: %v", err)
	}

	c.PollsTotal.WithLabelValues(PollResultOK).Inc()
	c.PollsTotal.WithLabelValues(PollResultDecodeError).Inc()
	c.PollsTotal.WithLabelValues(PollResultDecodeError).Inc()

	if got := testutil.ToFloat64(c.PollsTotal.WithLabelValues(PollResultOK)); got != 1 {
		t.Errorf("polls ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.PollsTotal.WithLabelValues(PollResultDecodeError)); got != 2 {
		t.Errorf("polls decode_error = %v, want 2", got)
	}
}

func TestNewTrackerCollector_DoubleRegistrationIsTolerated(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewTrackerCollector(reg); err != nil {
		t.Fatalf("first NewTrackerCollector: %v", err)
	}
	if _, err := NewTrackerCollector(reg); err != nil {
		t.Fatalf("second NewTrackerCollector: %v", err)
	}
}

func TestObserveBand(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewTrackerCollector(reg)
	if err != nil {
		t.Fatalf("NewTrackerCollector: %v", err)
	}

	cases := []struct {
		band models.DistanceBand
		want float64
	}{
		{models.BandNear, 0},
		{models.BandApproaching, 1},
		{models.BandFar, 2},
		{models.DistanceBand(""), -1},
	}
	for _, tc := range cases {
		c.ObserveBand(tc.band)
		if got := testutil.ToFloat64(c.DistanceBand); got != tc.want {
			t.Errorf("band %q: gauge = %v, want %v", tc.band, got, tc.want)
		}
	}
}

func TestSetLinkUp(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewTrackerCollector(reg)
	if err != nil {
		t.Fatalf("NewTrackerCollector: %v", err)
	}

	c.SetLinkUp(true)
	if got := testutil.ToFloat64(c.LinkUp); got != 1 {
		t.Errorf("link up gauge = %v, want 1", got)
	}
	c.SetLinkUp(false)
	if got := testutil.ToFloat64(c.LinkUp); got != 0 {
		t.Errorf("link up gauge = %v, want 0", got)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewTrackerCollector(reg)
	if err != nil {
		t.Fatalf("NewTrackerCollector: %v", err)
	}
	c.DistanceKm.Set(734.5)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "tracker_satellite_distance_km 734.5") {
		t.Errorf("metrics output missing distance gauge:\n%s", body)
	}
}
