package timesystems

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brandon-sexton/otk-time-systems/julian"
	"github.com/brandon-sexton/otk-time-systems/solar"
)

const (
	sunrisePrefix = "@sunrise"
	sunsetPrefix  = "@sunset"

	// polar day and night can last for months
	searchLimit = 366
)

// Location is a point on the Earth's surface in degrees. Longitude is
// degrees east, with negative values for degrees west.
type Location struct {
	Latitude  float64 `json:"latitude" koanf:"latitude"`
	Longitude float64 `json:"longitude" koanf:"longitude"`
}

// SunEvents are the instants of solar transit, sunrise and sunset on
// a single UTC day
type SunEvents struct {
	Transit Epoch  `json:"transit"`
	Sunrise *Epoch `json:"sunrise,omitempty"`
	Sunset  *Epoch `json:"sunset,omitempty"`

	// Polar is set when the sun does not rise or set. Sunrise and
	// Sunset are nil.
	Polar bool `json:"polar"`
}

// SunEvents calculates solar events at l for the UTC day containing e
func (l Location) SunEvents(e Epoch) SunEvents {
	date := julian.ToCalendar(e.JulianUTC())
	events := solar.EventsOn(l.Latitude, l.Longitude, date.Year, time.Month(date.Month), date.Day)

	sun := SunEvents{
		Transit: FromJulianTT(julian.UTCToTT(events.Transit)),
		Polar:   events.Polar,
	}
	if !events.Polar {
		sunrise := FromJulianTT(julian.UTCToTT(events.Sunrise))
		sunset := FromJulianTT(julian.UTCToTT(events.Sunset))
		sun.Sunrise = &sunrise
		sun.Sunset = &sunset
	}
	return sun
}

// SunEvent selects which solar event a SunSchedule follows
type SunEvent string

const (
	Sunrise SunEvent = "sunrise"
	Sunset  SunEvent = "sunset"
)

// SunSchedule fires at sunrise or sunset, shifted by Offset, at a
// given location.
//
// This implements robfig/cron.Schedule
type SunSchedule struct {
	Location Location      `json:"location"`
	Event    SunEvent      `json:"event"`
	Offset   time.Duration `json:"offset"`
}

// Next returns the first time after now that the schedule fires.
// Days without the event are skipped. If no event occurs within a
// year, Next returns the zero time, which cron treats as never.
func (s SunSchedule) Next(now time.Time) time.Time {
	// start a day early: an offset can push an event past midnight
	day := FromTime(now)
	for i := -1; i < searchLimit; i++ {
		events := s.Location.SunEvents(day.PlusDays(float64(i)))
		if events.Polar {
			continue
		}

		at := *events.Sunset
		if s.Event == Sunrise {
			at = *events.Sunrise
		}

		next := at.Time().Add(s.Offset)
		if next.After(now) {
			return next
		}
	}

	return time.Time{}
}

// ParseSchedule reads a job schedule. "@sunrise" and "@sunset",
// optionally followed by an offset such as "-1h" or "30m", follow the
// sun at loc. Anything else is read as a standard five field cron
// spec.
func ParseSchedule(spec string, loc Location) (cron.Schedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty schedule")
	}

	var event SunEvent
	switch fields[0] {
	case sunrisePrefix:
		event = Sunrise
	case sunsetPrefix:
		event = Sunset
	default:
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse cron spec: %w", err)
		}
		return schedule, nil
	}

	schedule := SunSchedule{
		Location: loc,
		Event:    event,
	}

	switch len(fields) {
	case 1:
	case 2:
		offset, err := time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s offset: %w", event, err)
		}
		schedule.Offset = offset
	default:
		return nil, fmt.Errorf("%s schedule takes at most one offset: %q", event, spec)
	}

	return schedule, nil
}
