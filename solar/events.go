// Package solar calculates the sun's position and the times of solar
// transit, sunrise and sunset as UTC Julian dates.
package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Events are the Julian dates (UTC) of the sun's transit, rise and set
// on a single day.
type Events struct {
	Transit float64
	Sunrise float64
	Sunset  float64

	// Polar is set when the sun stays above or below the horizon all
	// day. Sunrise and Sunset are zero in that case.
	Polar bool
}

// EventsOn calculates solar events for a UTC calendar day at a given
// latitude and longitude, both in degrees. Longitude is degrees east.
func EventsOn(latitude, longitude float64, year int, month time.Month, day int) Events {
	p := PositionOn(longitude, year, month, day)
	events := Events{
		Transit: sunrise.SolarTransit(p.MeanSolarNoon, p.MeanAnomaly, p.EclipticLongitude),
	}

	rise, set := sunrise.SunriseSunset(latitude, longitude, year, month, day)
	if rise.IsZero() || set.IsZero() {
		events.Polar = true
		return events
	}

	events.Sunrise = sunrise.TimeToJulianDay(rise)
	events.Sunset = sunrise.TimeToJulianDay(set)
	return events
}
