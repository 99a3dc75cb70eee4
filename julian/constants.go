package julian

import (
	"github.com/brandon-sexton/otk-time-systems/units"
)

const (
	J2000                = 2451545.0 // 2000-01-01T12:00:00 TT
	MJDOffset            = 2400000.5 // Julian date of MJD 0
	UnixEpoch            = 2440587.5 // 1970-01-01T00:00:00 UTC
	DaysPerJulianCentury = 36525

	// GregorianCutover is the last Julian day number reckoned in the
	// Julian calendar (1582-10-04). Later day numbers are Gregorian.
	GregorianCutover = 2299160
)

// TT-UTC is fixed at the leap second count in effect since 2017-01-01.
// It does not track leap seconds announced after that date.
//
// https://www.ietf.org/timezones/data/leap-seconds.list
const (
	TTMinusTAI  = 32.184 // seconds
	TAIMinusUTC = 37     // seconds

	TTMinusUTC = (TTMinusTAI + TAIMinusUTC) / units.SecondsPerDay // days
)
