// Package units converts between time units and between angle units.
package units

const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	HoursPerDay      = 24 // not including leap seconds

	SecondsPerHour = SecondsPerMinute * MinutesPerHour
	SecondsPerDay  = SecondsPerHour * HoursPerDay
	MinutesPerDay  = MinutesPerHour * HoursPerDay
)

// SecondsToMinutes converts seconds to minutes
func SecondsToMinutes(seconds float64) float64 {
	return seconds / SecondsPerMinute
}

// MinutesToSeconds converts minutes to seconds
func MinutesToSeconds(minutes float64) float64 {
	return minutes * SecondsPerMinute
}

// MinutesToHours converts minutes to hours
func MinutesToHours(minutes float64) float64 {
	return minutes / MinutesPerHour
}

// HoursToMinutes converts hours to minutes
func HoursToMinutes(hours float64) float64 {
	return hours * MinutesPerHour
}

// HoursToDays converts hours to days
func HoursToDays(hours float64) float64 {
	return hours / HoursPerDay
}

// DaysToHours converts days to hours
func DaysToHours(days float64) float64 {
	return days * HoursPerDay
}

// DaysToMinutes converts days to minutes
func DaysToMinutes(days float64) float64 {
	return HoursToMinutes(DaysToHours(days))
}

// MinutesToDays converts minutes to days
func MinutesToDays(minutes float64) float64 {
	return HoursToDays(MinutesToHours(minutes))
}

// DaysToSeconds converts days to seconds
func DaysToSeconds(days float64) float64 {
	return MinutesToSeconds(DaysToMinutes(days))
}

// SecondsToDays converts seconds to days
func SecondsToDays(seconds float64) float64 {
	return MinutesToDays(SecondsToMinutes(seconds))
}

// HoursToSeconds converts hours to seconds
func HoursToSeconds(hours float64) float64 {
	return MinutesToSeconds(HoursToMinutes(hours))
}

// SecondsToHours converts seconds to hours
func SecondsToHours(seconds float64) float64 {
	return MinutesToHours(SecondsToMinutes(seconds))
}
