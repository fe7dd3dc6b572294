package models

import "time"

// TrackerState is the current snapshot of the tracker.
// Satellite is nil until the first successful poll replaces it; each
// successful poll overwrites the whole snapshot, no history is kept.
type TrackerState struct {
	Satellite  *Coordinate   `json:"satellite,omitempty"`
	DistanceKm float64       `json:"distance_km,omitempty"`
	Band       DistanceBand  `json:"band,omitempty"`
	Mode       IndicatorMode `json:"mode"`
	Signals    Signals       `json:"signals"`
	LinkUp     bool          `json:"link_up"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
