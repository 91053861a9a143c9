package catalog

import "math"

// Clock-speed model constants. Clock is a percentage; throughput scales
// linearly with it while machine power scales by the fixed exponent below
// (log2(2.5): overclocking buys linear throughput for super-linear power).
const (
	MinClockPercent = 0.0
	MaxClockPercent = 250.0

	OverclockPowerExponent = 1.321928
)

// IsValidClock reports whether percent is inside the allowed clock range.
func IsValidClock(percent float64) bool {
	return percent >= MinClockPercent && percent <= MaxClockPercent
}

// ClockFactor returns the linear throughput factor for a clock percentage.
func ClockFactor(percent float64) float64 {
	return percent / 100
}

// PowerFactor returns the non-linear power factor for a clock percentage.
func PowerFactor(percent float64) float64 {
	return math.Pow(percent/100, OverclockPowerExponent)
}
