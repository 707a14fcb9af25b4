package engine

import "github.com/rshade/greenevent/internal/factors"

// DigitalEmissions returns streaming and end-user device emissions of virtual
// attendance in kg CO2e. Zero attendees yields zero.
func DigitalEmissions(p DigitalProfile) (float64, error) {
	platform, ok := factors.PlatformMultiplier(p.Platform)
	if !ok {
		return 0, unknownValue("digital.platform", p.Platform)
	}
	if p.Attendees < 0 {
		return 0, invalid("digital.attendees", p.Attendees, "must not be negative")
	}
	if err := checkNonNegative("digital.streaming_hours", p.StreamingHours); err != nil {
		return 0, err
	}

	kg := float64(p.Attendees) * p.StreamingHours * (factors.StreamingFactor + factors.DeviceFactor) * platform
	if p.Recording {
		kg *= factors.RecordingSurcharge
	}
	if p.Interactive {
		kg *= factors.InteractiveSurcharge
	}
	return kg, nil
}
