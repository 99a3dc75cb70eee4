// Package timesystems represents instants as Julian dates in the
// Terrestrial Time scale and converts them to and from UTC calendar
// strings.
package timesystems

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/brandon-sexton/otk-time-systems/julian"
	"github.com/brandon-sexton/otk-time-systems/units"
)

const (
	millisecondsPerDay = units.SecondsPerDay * 1000

	// IAU 1982 GMST polynomial, degrees
	gmstAtJ2000    = 100.4606184
	gmstPerCentury = 36000.77004
	gmstQuadratic  = 0.000387933
	gmstPerDay     = 360.98564724
	mjdJ2000       = 51544.5
)

// Epoch is an instant stored as a Julian date on the TT scale.
//
// Epoch is a value type. Methods never modify the receiver; every
// derived instant is a new Epoch, so values are safe to share between
// goroutines.
type Epoch struct {
	julianTT float64
}

// Parse reads a UTC timestamp of the form YYYY-MM-DDTHH:MM:SS[.sss]Z.
//
// Only the separators are checked. Field widths are not enforced and
// numeric fields are not range checked, so "2018-13-40T25:00:00Z" is
// accepted and lands wherever the arithmetic puts it.
func Parse(s string) (Epoch, error) {
	parts := strings.Split(s, "T")
	if len(parts) != 2 {
		return Epoch{}, &ParseError{Input: s}
	}

	date := strings.Split(parts[0], "-")
	clock := strings.Split(strings.TrimSuffix(parts[1], "Z"), ":")
	if len(date) != 3 || len(clock) != 3 {
		return Epoch{}, &ParseError{Input: s}
	}

	names := [6]string{"year", "month", "day", "hour", "minute", "second"}
	var fields [6]float64
	for i, raw := range append(date, clock...) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Epoch{}, &ParseError{Input: s, Field: names[i], Err: err}
		}
		fields[i] = v
	}

	utc := julian.FromCalendar(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
	return FromJulianTT(julian.UTCToTT(utc)), nil
}

// MustParse is like Parse but panics if s cannot be parsed
func MustParse(s string) Epoch {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// FromJulianTT returns the Epoch for a TT Julian date. The value is
// stored as given.
func FromJulianTT(jd float64) Epoch {
	return Epoch{julianTT: jd}
}

// FromTime returns the Epoch for t. Sub-millisecond precision is kept
// but leap seconds are not, matching the time package.
func FromTime(t time.Time) Epoch {
	return FromJulianTT(julian.UTCToTT(julian.FromTime(t)))
}

// Time returns e as a UTC time.Time rounded to the millisecond
func (e Epoch) Time() time.Time {
	ms := math.Round((e.JulianUTC() - julian.UnixEpoch) * millisecondsPerDay)
	return time.UnixMilli(int64(ms)).UTC()
}

// Copy returns an independent Epoch at the same instant
func (e Epoch) Copy() Epoch {
	return Epoch{julianTT: e.julianTT}
}

// JulianTT returns the Julian date on the Terrestrial Time scale
func (e Epoch) JulianTT() float64 {
	return e.julianTT
}

// JulianUTC returns the Julian date on the UTC scale
func (e Epoch) JulianUTC() float64 {
	return julian.TTToUTC(e.julianTT)
}

// MJD returns the Modified Julian date on the UTC scale
func (e Epoch) MJD() float64 {
	return julian.ToMJD(e.JulianUTC())
}

// PlusDays returns a new Epoch offset from e by a number of TT days
func (e Epoch) PlusDays(days float64) Epoch {
	return FromJulianTT(e.julianTT + days)
}

// DaysPastJ2000 returns TT days elapsed since the J2000.0 epoch
func (e Epoch) DaysPastJ2000() float64 {
	return e.julianTT - julian.J2000
}

// JulianCenturiesPastJ2000 returns Julian centuries of TT elapsed
// since the J2000.0 epoch
func (e Epoch) JulianCenturiesPastJ2000() float64 {
	return e.DaysPastJ2000() / julian.DaysPerJulianCentury
}

// GMST returns Greenwich Mean Sidereal Time in radians, in [0, 2π).
// Julian dates too large for the polynomial to stay finite, and NaN,
// return 0.
//
// https://en.wikipedia.org/wiki/Sidereal_time
func (e Epoch) GMST() float64 {
	mjd := e.MJD()
	day := math.Floor(mjd)
	fraction := mjd - day
	t := (day - mjdJ2000) / julian.DaysPerJulianCentury

	degrees := gmstAtJ2000 + gmstPerCentury*t + gmstQuadratic*t*t + gmstPerDay*fraction
	if math.IsInf(degrees, 0) || math.IsNaN(degrees) {
		return 0
	}
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}

	radians := units.DegreesToRadians(degrees)
	if radians >= 2*math.Pi {
		radians -= 2 * math.Pi
	}
	return radians
}

// Before reports whether e is earlier than other
func (e Epoch) Before(other Epoch) bool {
	return e.julianTT < other.julianTT
}

// After reports whether e is later than other
func (e Epoch) After(other Epoch) bool {
	return e.julianTT > other.julianTT
}

// Equal reports whether e and other are the same instant
func (e Epoch) Equal(other Epoch) bool {
	return e.julianTT == other.julianTT
}

// String formats e as a UTC timestamp, YYYY-MM-DDTHH:MM:SS.sssZ.
//
// The time of day is rounded to the millisecond before it is split
// into fields, so 59.9996 seconds prints as the next minute rather
// than as 60.000.
func (e Epoch) String() string {
	shifted := e.JulianUTC() + 0.5
	day := math.Floor(shifted)
	ms := int64(math.Round((shifted - day) * millisecondsPerDay))
	if ms >= millisecondsPerDay {
		day += 1
		ms -= millisecondsPerDay
	}

	// midnight of the day, so the calendar has no time of day
	date := julian.ToCalendar(day - 0.5)

	hour := ms / 3600000
	minute := ms / 60000 % 60
	second := float64(ms%60000) / 1000

	return fmt.Sprintf(
		"%04d-%02d-%02dT%02d:%02d:%06.3fZ",
		date.Year, date.Month, date.Day, hour, minute, second,
	)
}

// MarshalText encodes e as its String form
func (e Epoch) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText parses text with Parse
func (e *Epoch) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
