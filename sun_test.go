package timesystems

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

var toronto = Location{Latitude: 43.65, Longitude: -79.38}

const tenMinutes = 10 * time.Minute

func TestSunEvents(t *testing.T) {
	Convey("Given Toronto on 2000-01-01", t, func() {
		events := toronto.SunEvents(MustParse("2000-01-01T12:00:00Z"))

		So(events.Polar, ShouldBeFalse)
		So(events.Sunrise.Before(events.Transit), ShouldBeTrue)
		So(events.Transit.Before(*events.Sunset), ShouldBeTrue)

		Convey("Sunset is near 21:51 UTC", func() {
			want := time.Date(2000, 1, 1, 21, 51, 0, 0, time.UTC)
			So(events.Sunset.Time(), ShouldHappenWithin, tenMinutes, want)
		})
	})

	Convey("Given the high Arctic in polar night", t, func() {
		arctic := Location{Latitude: 80, Longitude: 15}
		events := arctic.SunEvents(MustParse("2020-12-21T12:00:00Z"))

		So(events.Polar, ShouldBeTrue)
		So(events.Sunrise, ShouldBeNil)
		So(events.Sunset, ShouldBeNil)
	})
}

func TestSunSchedule(t *testing.T) {
	Convey("Given a sunset schedule in Toronto", t, func() {
		schedule := SunSchedule{Location: toronto, Event: Sunset}

		Convey("Next from midnight is that evening's sunset", func() {
			now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
			want := time.Date(2000, 1, 1, 21, 51, 0, 0, time.UTC)
			So(schedule.Next(now), ShouldHappenWithin, tenMinutes, want)
		})

		Convey("Next from just after sunset is the following day", func() {
			now := time.Date(2000, 1, 1, 22, 30, 0, 0, time.UTC)
			want := time.Date(2000, 1, 2, 21, 52, 0, 0, time.UTC)
			So(schedule.Next(now), ShouldHappenWithin, tenMinutes, want)
		})

		Convey("An offset past midnight UTC is still found", func() {
			schedule.Offset = 3 * time.Hour
			now := time.Date(2000, 1, 2, 0, 30, 0, 0, time.UTC)
			want := time.Date(2000, 1, 2, 0, 51, 0, 0, time.UTC)
			So(schedule.Next(now), ShouldHappenWithin, tenMinutes, want)
		})
	})

	Convey("Given a sunrise schedule during polar night", t, func() {
		schedule := SunSchedule{Location: Location{Latitude: 80, Longitude: 15}, Event: Sunrise}
		now := time.Date(2020, 12, 21, 0, 0, 0, 0, time.UTC)

		next := schedule.Next(now)
		So(next.IsZero(), ShouldBeFalse)
		So(next, ShouldHappenBetween,
			time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
		)
	})
}

func TestParseSchedule(t *testing.T) {
	Convey("Given sun schedules", t, func() {
		Convey("An offset is parsed as a duration", func() {
			schedule, err := ParseSchedule("@sunset -1h", toronto)
			So(err, ShouldBeNil)
			So(schedule, ShouldResemble, SunSchedule{Location: toronto, Event: Sunset, Offset: -time.Hour})
		})

		Convey("The offset is optional", func() {
			schedule, err := ParseSchedule("@sunrise", toronto)
			So(err, ShouldBeNil)
			So(schedule, ShouldResemble, SunSchedule{Location: toronto, Event: Sunrise})
		})

		Convey("A bad offset is rejected", func() {
			_, err := ParseSchedule("@sunset soon", toronto)
			So(err, ShouldNotBeNil)
		})

		Convey("Extra fields are rejected", func() {
			_, err := ParseSchedule("@sunset 1h 2h", toronto)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a standard cron spec", t, func() {
		schedule, err := ParseSchedule("0 7 * * *", toronto)
		So(err, ShouldBeNil)

		now := time.Date(2018, 8, 8, 8, 8, 8, 0, time.UTC)
		So(schedule.Next(now).Equal(time.Date(2018, 8, 9, 7, 0, 0, 0, time.UTC)), ShouldBeTrue)
	})

	Convey("Given malformed specs", t, func() {
		_, err := ParseSchedule("", toronto)
		So(err, ShouldNotBeNil)

		_, err = ParseSchedule("every tuesday", toronto)
		So(err, ShouldNotBeNil)
	})
}
