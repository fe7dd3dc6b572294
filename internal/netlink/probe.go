package netlink

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultRetryWindow is the hard deadline for one reconnect attempt.
	DefaultRetryWindow = 10 * time.Second

	// DefaultRetryStep is the pause between probes inside the window.
	DefaultRetryStep = 500 * time.Millisecond
)

// ProbeLink implements Link on top of a Prober.
type ProbeLink struct {
	probe       Prober
	retryWindow time.Duration
	retryStep   time.Duration

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)

	mu        sync.RWMutex
	connected bool
}

// NewProbeLink builds a link around the given prober. Non-positive window or
// step values select the defaults.
func NewProbeLink(probe Prober, retryWindow, retryStep time.Duration) *ProbeLink {
	if retryWindow <= 0 {
		retryWindow = DefaultRetryWindow
	}
	if retryStep <= 0 {
		retryStep = DefaultRetryStep
	}
	return &ProbeLink{
		probe:       probe,
		retryWindow: retryWindow,
		retryStep:   retryStep,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Connected reports the result of the most recent probe.
func (l *ProbeLink) Connected() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.connected
}

func (l *ProbeLink) setConnected(up bool) {
	l.mu.Lock()
	l.connected = up
	l.mu.Unlock()
}

// EnsureConnected probes once and, on failure, retries every retryStep until
// the retry window elapses or ctx is canceled. The window is a hard wall
// clock deadline, never an unbounded wait.
func (l *ProbeLink) EnsureConnected(ctx context.Context) error {
	err := l.probe(ctx)
	if err == nil {
		l.setConnected(true)
		return nil
	}

	deadline := l.now().Add(l.retryWindow)
	for l.now().Before(deadline) {
		if ctx.Err() != nil {
			l.setConnected(false)
			return &ConnectivityError{Window: l.retryWindow, Err: ctx.Err()}
		}
		l.sleep(l.retryStep)
		if err = l.probe(ctx); err == nil {
			l.setConnected(true)
			return nil
		}
	}

	l.setConnected(false)
	return &ConnectivityError{Window: l.retryWindow, Err: err}
}
