// Package indicator renders an IndicatorMode into three binary outputs.
// Render is called on every run-loop pass and never blocks; blinking is
// animated by comparing wall-clock deltas against the blink interval.
package indicator

import (
	"sync"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

const (
	// DefaultBlinkFast is the toggle interval for BLINK_GREEN_FAST.
	DefaultBlinkFast = 200 * time.Millisecond

	// DefaultBlinkMedium is the toggle interval for BLINK_BLUE.
	DefaultBlinkMedium = 500 * time.Millisecond
)

// Pin is one binary hardware output.
type Pin interface {
	Set(on bool)
	Get() bool
}

// blinkPhase is the per-pin animation state. The phase clock keeps running
// across mode changes; a blink resumes from wherever its toggle clock was.
type blinkPhase struct {
	lastToggle time.Time
	on         bool
}

// tick flips the phase if interval has elapsed since the last toggle and
// returns the current on/off level.
func (p *blinkPhase) tick(now time.Time, interval time.Duration) bool {
	if p.lastToggle.IsZero() {
		p.lastToggle = now
		return p.on
	}
	if now.Sub(p.lastToggle) >= interval {
		p.lastToggle = now
		p.on = !p.on
	}
	return p.on
}

// Driver owns the three indicator pins and their blink phases.
type Driver struct {
	mu sync.Mutex

	red, green, blue Pin

	blinkFast   time.Duration
	blinkMedium time.Duration

	greenPhase blinkPhase
	bluePhase  blinkPhase
}

// NewDriver builds a driver over the given pins. Non-positive intervals
// select the defaults.
func NewDriver(red, green, blue Pin, blinkFast, blinkMedium time.Duration) *Driver {
	if blinkFast <= 0 {
		blinkFast = DefaultBlinkFast
	}
	if blinkMedium <= 0 {
		blinkMedium = DefaultBlinkMedium
	}
	return &Driver{
		red:         red,
		green:       green,
		blue:        blue,
		blinkFast:   blinkFast,
		blinkMedium: blinkMedium,
	}
}

// Render drives the pins for the given mode at the given instant.
func (d *Driver) Render(mode models.IndicatorMode, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch mode {
	case models.ModeSteadyRed:
		d.red.Set(true)
		d.green.Set(false)
		d.blue.Set(false)
	case models.ModeBlinkBlue:
		d.red.Set(false)
		d.green.Set(false)
		d.blue.Set(d.bluePhase.tick(now, d.blinkMedium))
	case models.ModeBlinkGreenFast:
		d.red.Set(false)
		d.blue.Set(false)
		d.green.Set(d.greenPhase.tick(now, d.blinkFast))
	default: // ModeOff and anything unrecognized
		d.red.Set(false)
		d.green.Set(false)
		d.blue.Set(false)
	}
}

// Signals returns the current pin levels.
func (d *Driver) Signals() models.Signals {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.Signals{
		Red:   d.red.Get(),
		Green: d.green.Get(),
		Blue:  d.blue.Get(),
	}
}
