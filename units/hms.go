package units

import (
	"math"
)

// HMS is a time of day split into whole hours, whole minutes and
// fractional seconds.
type HMS struct {
	Hours   int
	Minutes int
	Seconds float64
}

// Days returns the fraction of a day represented by h.
func (h HMS) Days() float64 {
	return HMSToDays(float64(h.Hours), float64(h.Minutes), h.Seconds)
}

// HMSToDays sums the day equivalent of each component. Components
// are not bounds checked, so 90 minutes is the same as 1h30m.
func HMSToDays(hours, minutes, seconds float64) float64 {
	return HoursToDays(hours) + MinutesToDays(minutes) + SecondsToDays(seconds)
}

// DaysToHMS splits a day fraction into hours, minutes and seconds.
//
// Each step floors toward negative infinity, so negative input gives a
// negative hour count with non-negative minutes and seconds, e.g.
// -90 minutes is {-2, 30, 0}.
func DaysToHMS(days float64) HMS {
	hours := DaysToHours(days)
	wholeHours := math.Floor(hours)

	minutes := HoursToMinutes(hours - wholeHours)
	wholeMinutes := math.Floor(minutes)

	return HMS{
		Hours:   int(wholeHours),
		Minutes: int(wholeMinutes),
		Seconds: MinutesToSeconds(minutes - wholeMinutes),
	}
}
