package units

import (
	"math"
)

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
