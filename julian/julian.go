// Package julian converts between calendar dates, Julian dates and
// Modified Julian dates, and between the UTC and TT time scales.
package julian

import (
	"math"
	"time"

	"github.com/brandon-sexton/otk-time-systems/units"
)

// Calendar is a broken down date and time of day
type Calendar struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// Julian returns the Julian date of c
func (c Calendar) Julian() float64 {
	return FromCalendar(
		float64(c.Year),
		float64(c.Month),
		float64(c.Day),
		float64(c.Hour),
		float64(c.Minute),
		c.Second,
	)
}

// FromCalendar returns the Julian date for a proleptic Gregorian
// calendar date and time of day.
//
// January and February are counted as months 13 and 14 of the
// previous year so the leap day falls at the end of the year.
// Fields are not range checked; fractional or out of range values
// carry through the arithmetic.
//
// https://en.wikipedia.org/wiki/Julian_day#Converting_Gregorian_calendar_date_to_Julian_Day_Number
func FromCalendar(year, month, day, hour, minute, second float64) float64 {
	if month < 3 {
		year -= 1
		month += 12
	}

	a := math.Floor(year * 0.01)
	b := 2 - a + math.Floor(a*0.25)
	jd := b + math.Floor(365.25*year) + math.Floor(30.6001*(month+1)) + day + 1720994.5

	return jd + units.HMSToDays(hour, minute, second)
}

// FromTime returns the Julian date of t in UTC. Leap seconds are not
// counted, matching the time package.
func FromTime(t time.Time) float64 {
	t = t.UTC()
	second := float64(t.Second()) + float64(t.Nanosecond())/1e9

	return FromCalendar(
		float64(t.Year()),
		float64(t.Month()),
		float64(t.Day()),
		float64(t.Hour()),
		float64(t.Minute()),
		second,
	)
}

// ToCalendar returns the calendar date and time of day for a Julian
// date. Day numbers up to and including GregorianCutover are given in
// the Julian calendar, later ones in the Gregorian calendar.
func ToCalendar(jd float64) Calendar {
	shifted := jd + 0.5
	z := math.Floor(shifted)
	f := shifted - z

	a := z
	if z > GregorianCutover {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha*0.25)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	g := math.Floor((b - d) / 30.6001)

	// g and month are whole numbers that may carry rounding noise, so
	// compare against the half way point rather than test equality
	month := g - 1
	if g > 13.5 {
		month -= 12
	}

	year := c - 4716
	if month < 2.5 {
		year += 1
	}

	day := b - d - math.Floor(30.6001*g)
	hms := units.DaysToHMS(f)

	return Calendar{
		Year:   int(year),
		Month:  int(month),
		Day:    int(day),
		Hour:   hms.Hours,
		Minute: hms.Minutes,
		Second: hms.Seconds,
	}
}

// ToMJD returns the Modified Julian date for a Julian date
func ToMJD(jd float64) float64 {
	return jd - MJDOffset
}

// FromMJD returns the Julian date for a Modified Julian date
func FromMJD(mjd float64) float64 {
	return mjd + MJDOffset
}

// UTCToTT shifts a Julian date from the UTC scale to the TT scale
func UTCToTT(jd float64) float64 {
	return jd + TTMinusUTC
}

// TTToUTC shifts a Julian date from the TT scale to the UTC scale
func TTToUTC(jd float64) float64 {
	return jd - TTMinusUTC
}
