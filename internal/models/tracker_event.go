package models

import "time"

// Event types recorded in the diagnostics feed.
const (
	EventLinkUp     = "LINK_UP"
	EventLinkDown   = "LINK_DOWN"
	EventTelemetry  = "TELEMETRY"
	EventBandChange = "BAND_CHANGE"
	EventError      = "ERROR"
)

// TrackerEvent is a single diagnostics log entry.
type TrackerEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // LINK_UP | LINK_DOWN | TELEMETRY | BAND_CHANGE | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
