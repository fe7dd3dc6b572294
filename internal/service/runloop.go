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

// Default task intervals.
const (
	DefaultCheckInterval = 5 * time.Second
	DefaultPollInterval  = 30 * time.Second
	DefaultIdleDelay     = 10 * time.Millisecond
)

// TrackerLoop is the cooperative run loop. Within one iteration the ordering
// is fixed: connectivity maintenance, then position polling, then indicator
// rendering. A connectivity change is therefore visible to the same
// iteration's poll decision, and a poll's mode change is visible to the same
// iteration's render. Every task entry point returns promptly; the only
// tolerated blocking is the link's time-boxed reconnect window.
type TrackerLoop struct {
	link     netlink.Link
	poller   Poller
	renderer Renderer
	state    *store.StateStore
	events   *store.EventRing
	log      *logger.Logger
	metrics  *observability.TrackerCollector

	checkInterval time.Duration
	pollInterval  time.Duration
	idleDelay     time.Duration

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)

	linkUp bool
}

// NewTrackerLoop builds the loop from the shared deps. Non-positive
// intervals select the defaults.
func NewTrackerLoop(d Deps, poller Poller) *TrackerLoop {
	check, poll, idle := d.CheckInterval, d.PollInterval, d.IdleDelay
	if check <= 0 {
		check = DefaultCheckInterval
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	if idle <= 0 {
		idle = DefaultIdleDelay
	}
	return &TrackerLoop{
		link:          d.Link,
		poller:        poller,
		renderer:      d.Renderer,
		state:         d.State,
		events:        d.Events,
		log:           d.Log,
		metrics:       d.Metrics,
		checkInterval: check,
		pollInterval:  poll,
		idleDelay:     idle,
		now:           time.Now,
		sleep:         time.Sleep,
	}
}

// Run loops until ctx is canceled. Task timers start at "never fired", so
// both periodic tasks fire on the first pass. Intervals stay constant no
// matter how many consecutive failures occur.
func (l *TrackerLoop) Run(ctx context.Context) {
	var lastCheck, lastPoll time.Time

	for ctx.Err() == nil {
		now := l.now()

		if lastCheck.IsZero() || now.Sub(lastCheck) >= l.checkInterval {
			lastCheck = now
			l.maintainLink(ctx)
		}

		if lastPoll.IsZero() || now.Sub(lastPoll) >= l.pollInterval {
			lastPoll = now
			l.pollPosition(ctx)
		}

		l.renderer.Render(l.state.Mode(), now)

		l.sleep(l.idleDelay)
	}
}

// maintainLink runs one connectivity check and records up/down transitions.
func (l *TrackerLoop) maintainLink(ctx context.Context) {
	err := l.link.EnsureConnected(ctx)
	up := err == nil

	if up != l.linkUp {
		if up {
			if l.log != nil {
				l.log.Infow("link established")
			}
			l.events.Append(models.TrackerEvent{
				Type:        models.EventLinkUp,
				Description: "Position endpoint reachable",
			})
			if l.metrics != nil {
				l.metrics.ReconnectsTotal.Inc()
			}
		} else {
			if l.log != nil {
				l.log.Warnw("link lost", "err", err)
			}
			l.events.Append(models.TrackerEvent{
				Type:        models.EventLinkDown,
				Description: "Position endpoint unreachable",
				Metadata:    map[string]any{"error": err.Error()},
			})
		}
		l.linkUp = up
	} else if err != nil && l.log != nil {
		l.log.Warnw("link still down", "err", err)
	}

	l.state.SetLinkUp(up)
	if l.metrics != nil {
		l.metrics.SetLinkUp(up)
	}
}

// pollPosition runs one poll cycle, or reports "not connected" without
// touching the indicator mode when the link is down.
func (l *TrackerLoop) pollPosition(ctx context.Context) {
	if !l.link.Connected() {
		if l.log != nil {
			l.log.Infow("skipping position poll, link down")
		}
		if l.metrics != nil {
			l.metrics.PollsTotal.WithLabelValues(observability.PollResultOffline).Inc()
		}
		return
	}
	// The poller logs and records its own failures; the loop just moves on
	// to the next interval.
	_, _ = l.poller.Poll(ctx)
}
