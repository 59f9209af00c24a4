package common

import "math"

// TPS is the fixed update rate of the game loop.
const TPS = 60

// TickSeconds is the simulated time of one update.
const TickSeconds = 1.0 / TPS

// MillisToTicks converts a duration in milliseconds to whole ticks, never
// less than one.
func MillisToTicks(ms float64) int {
	ticks := int(math.Round(ms * TPS / 1000))
	if ticks < 1 {
		return 1
	}
	return ticks
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
