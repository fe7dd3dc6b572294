package netlink

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock drives a ProbeLink without real sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func newTestLink(probe Prober, window, step time.Duration) (*ProbeLink, *fakeClock) {
	clk := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
	l := NewProbeLink(probe, window, step)
	l.now = clk.Now
	l.sleep = clk.Sleep
	return l, clk
}

func TestEnsureConnected_ImmediateSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	l, _ := newTestLink(func(ctx context.Context) error {
		calls++
		return nil
	}, 10*time.Second, 500*time.Millisecond)

	if err := l.EnsureConnected(context.Background()); err != nil {
		t.Fatalf("EnsureConnected: %v", err)
	}
	if calls != 1 {
		t.Errorf("probe calls = %d, want 1", calls)
	}
	if !l.Connected() {
		t.Error("Connected() = false after successful probe")
	}
}

func TestEnsureConnected_RecoversInsideWindow(t *testing.T) {
	t.Parallel()

	calls := 0
	l, _ := newTestLink(func(ctx context.Context) error {
		calls++
		if calls < 4 {
			return errors.New("no route")
		}
		return nil
	}, 10*time.Second, 500*time.Millisecond)

	if err := l.EnsureConnected(context.Background()); err != nil {
		t.Fatalf("EnsureConnected: %v", err)
	}
	if calls != 4 {
		t.Errorf("probe calls = %d, want 4", calls)
	}
	if !l.Connected() {
		t.Error("Connected() = false after recovery")
	}
}

func TestEnsureConnected_WindowIsBounded(t *testing.T) {
	t.Parallel()

	probeErr := errors.New("no route")
	calls := 0
	l, clk := newTestLink(func(ctx context.Context) error {
		calls++
		return probeErr
	}, 10*time.Second, 500*time.Millisecond)

	start := clk.Now()
	err := l.EnsureConnected(context.Background())

	var ce *ConnectivityError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConnectivityError, got %T (%v)", err, err)
	}
	if !errors.Is(err, probeErr) {
		t.Errorf("ConnectivityError should wrap the last probe error")
	}
	if l.Connected() {
		t.Error("Connected() = true after exhausted window")
	}

	// One initial probe plus one per step inside the 10 s window.
	if want := 1 + 20; calls != want {
		t.Errorf("probe calls = %d, want %d", calls, want)
	}
	if elapsed := clk.Now().Sub(start); elapsed > 10*time.Second+500*time.Millisecond {
		t.Errorf("blocked %v, window is 10s", elapsed)
	}
}

func TestEnsureConnected_CanceledContextStopsRetrying(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	l, _ := newTestLink(func(ctx context.Context) error {
		calls++
		cancel() // cancel after the first failed probe
		return errors.New("no route")
	}, 10*time.Second, 500*time.Millisecond)

	err := l.EnsureConnected(ctx)
	var ce *ConnectivityError
	if !errors.As(err, &ce) {
		t.Fatalf("want *ConnectivityError, got %T (%v)", err, err)
	}
	if calls != 1 {
		t.Errorf("probe calls = %d, want 1 (no retry after cancel)", calls)
	}
}

func TestDialProber_DefaultPorts(t *testing.T) {
	t.Parallel()

	for _, u := range []string{
		"http://api.open-notify.org/iss-now.json",
		"https://example.com/path",
		"http://localhost:9090/iss-now.json",
	} {
		if _, err := DialProber(u, time.Second); err != nil {
			t.Errorf("DialProber(%q): %v", u, err)
		}
	}

	if _, err := DialProber("://bad", time.Second); err == nil {
		t.Error("DialProber with malformed URL: want error")
	}
}
