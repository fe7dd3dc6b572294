// Package observability exposes Prometheus metrics for the tracker.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

// Poll outcome labels for tracker_polls_total.
const (
	PollResultOK             = "ok"
	PollResultTransportError = "transport_error"
	PollResultDecodeError    = "decode_error"
	PollResultOffline        = "offline"
)

// TrackerCollector bundles the tracker's Prometheus metrics and provides a
// ready-to-use /metrics handler.
type TrackerCollector struct {
	gatherer prometheus.Gatherer

	PollsTotal      *prometheus.CounterVec
	PollDuration    prometheus.Histogram
	DistanceKm      prometheus.Gauge
	DistanceBand    prometheus.Gauge
	LinkUp          prometheus.Gauge
	ReconnectsTotal prometheus.Counter
}

// NewTrackerCollector registers tracker metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewTrackerCollector(reg prometheus.Registerer) (*TrackerCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	polls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_polls_total",
		Help: "Total number of position poll attempts, labeled by result.",
	}, []string{"result"})
	if err := register(reg, polls); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tracker_poll_duration_seconds",
		Help:    "Latency of one fetch-decode-classify cycle in seconds.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
	if err := register(reg, duration); err != nil {
		return nil, err
	}

	distance := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_satellite_distance_km",
		Help: "Great-circle distance from the observer to the satellite, in km.",
	})
	if err := register(reg, distance); err != nil {
		return nil, err
	}

	band := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_distance_band",
		Help: "Current distance band: 0=NEAR, 1=APPROACHING, 2=FAR, -1=unknown.",
	})
	if err := register(reg, band); err != nil {
		return nil, err
	}
	band.Set(-1)

	linkUp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_link_up",
		Help: "1 when the position endpoint is reachable, 0 otherwise.",
	})
	if err := register(reg, linkUp); err != nil {
		return nil, err
	}

	reconnects := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracker_link_reconnects_total",
		Help: "Cumulative number of link down-to-up transitions.",
	})
	if err := register(reg, reconnects); err != nil {
		return nil, err
	}

	return &TrackerCollector{
		gatherer:        gatherer,
		PollsTotal:      polls,
		PollDuration:    duration,
		DistanceKm:      distance,
		DistanceBand:    band,
		LinkUp:          linkUp,
		ReconnectsTotal: reconnects,
	}, nil
}

func register(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// ObserveBand updates the band gauge from the classified band.
func (c *TrackerCollector) ObserveBand(band models.DistanceBand) {
	if c == nil {
		return
	}
	switch band {
	case models.BandNear:
		c.DistanceBand.Set(0)
	case models.BandApproaching:
		c.DistanceBand.Set(1)
	case models.BandFar:
		c.DistanceBand.Set(2)
	default:
		c.DistanceBand.Set(-1)
	}
}

// SetLinkUp updates the link gauge.
func (c *TrackerCollector) SetLinkUp(up bool) {
	if c == nil {
		return
	}
	if up {
		c.LinkUp.Set(1)
	} else {
		c.LinkUp.Set(0)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *TrackerCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
