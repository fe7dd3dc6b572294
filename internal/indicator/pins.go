package indicator

import "sync"

// StatePin is an in-process Pin. It stands in for a GPIO line on hosts
// without one and backs the observability surface, which reads pin levels
// from a different goroutine than the run loop that writes them.
type StatePin struct {
	mu sync.RWMutex
	on bool
}

// NewStatePin returns a pin that starts off.
func NewStatePin() *StatePin { return &StatePin{} }

func (p *StatePin) Set(on bool) {
	p.mu.Lock()
	p.on = on
	p.mu.Unlock()
}

func (p *StatePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.on
}
