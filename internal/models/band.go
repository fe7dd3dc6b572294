package models

// DistanceBand classifies the satellite's great-circle distance from the
// observer. The three bands partition [0, +inf): NEAR below the visible
// radius, APPROACHING up to the approach radius, FAR beyond it.
type DistanceBand string

const (
	BandNear        DistanceBand = "NEAR"
	BandApproaching DistanceBand = "APPROACHING"
	BandFar         DistanceBand = "FAR"
)

// IndicatorMode is the rendering instruction for the three status lights.
// ModeOff is the initial state before the first successful poll; afterwards
// the mode corresponds 1:1 with the current DistanceBand.
type IndicatorMode string

const (
	ModeOff            IndicatorMode = "OFF"
	ModeSteadyRed      IndicatorMode = "STEADY_RED"
	ModeBlinkBlue      IndicatorMode = "BLINK_BLUE"
	ModeBlinkGreenFast IndicatorMode = "BLINK_GREEN_FAST"
)

// Mode returns the indicator mode that encodes the band.
func (b DistanceBand) Mode() IndicatorMode {
	switch b {
	case BandNear:
		return ModeBlinkGreenFast
	case BandApproaching:
		return ModeBlinkBlue
	case BandFar:
		return ModeSteadyRed
	default:
		return ModeOff
	}
}

// Signals is a snapshot of the three binary indicator outputs.
type Signals struct {
	Red   bool `json:"red"`
	Green bool `json:"green"`
	Blue  bool `json:"blue"`
}
