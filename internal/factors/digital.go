package factors

// StreamingPlatform is the delivery quality of a virtual stream.
type StreamingPlatform string

// Recognized streaming platforms.
const (
	PlatformAudioOnly     StreamingPlatform = "audio-only"
	PlatformStandardVideo StreamingPlatform = "standard-video"
	PlatformHDVideo       StreamingPlatform = "hd-video"
	PlatformImmersive     StreamingPlatform = "immersive"
)

// StreamingPlatforms lists every platform in declaration order.
func StreamingPlatforms() []StreamingPlatform {
	return []StreamingPlatform{PlatformAudioOnly, PlatformStandardVideo, PlatformHDVideo, PlatformImmersive}
}

// PlatformMultiplier scales streaming and device emissions by stream quality.
func PlatformMultiplier(p StreamingPlatform) (float64, bool) {
	switch p {
	case PlatformAudioOnly:
		return 0.3, true
	case PlatformStandardVideo:
		return 1.0, true
	case PlatformHDVideo:
		return 1.6, true
	case PlatformImmersive:
		return 3.0, true
	default:
		return 0, false
	}
}

// Digital emission factors, kg CO2e per attendee-hour, and optional surcharges.
const (
	StreamingFactor      = 0.036
	DeviceFactor         = 0.05
	RecordingSurcharge   = 1.10
	InteractiveSurcharge = 1.05
)
