package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Position is the sun's apparent position at mean solar noon on a
// given day, worked through the steps of the sunrise equation.
// Angles are in degrees.
//
// https://en.wikipedia.org/wiki/Sunrise_equation
type Position struct {
	MeanSolarNoon     float64 // days since J2000
	MeanAnomaly       float64
	EquationOfCenter  float64
	EclipticLongitude float64
	Declination       float64
}

// PositionOn calculates the sun's position for a UTC calendar day at
// a given longitude. Longitude is degrees east, with negative values
// for degrees west.
func PositionOn(longitude float64, year int, month time.Month, day int) Position {
	noon := sunrise.MeanSolarNoon(longitude, year, month, day)
	anomaly := sunrise.SolarMeanAnomaly(noon)

	// angular difference between the position of the actual sun
	// (elliptical orbit) and the mean sun (circular orbit)
	center := sunrise.EquationOfCenter(anomaly)
	ecliptic := sunrise.EclipticLongitude(anomaly, center, noon)

	return Position{
		MeanSolarNoon:     noon,
		MeanAnomaly:       anomaly,
		EquationOfCenter:  center,
		EclipticLongitude: ecliptic,
		Declination:       sunrise.Declination(ecliptic),
	}
}
