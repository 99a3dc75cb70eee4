package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	timesystems "github.com/brandon-sexton/otk-time-systems"
)

const yamlConfig = `
addr: ":9100"
location:
  latitude: 43.65
  longitude: -79.38
jobs:
  - label: porch
    schedule: "@sunset -30m"
  - label: morning
    schedule: "0 7 * * *"
`

const jsonConfig = `{
  "addr": ":9200",
  "location": {"latitude": 51.48, "longitude": 0},
  "jobs": [{"label": "noon", "schedule": "0 12 * * *"}]
}`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}
	return path
}

func TestOpen(t *testing.T) {
	Convey("Given no config file", t, func() {
		config, err := Open("")
		So(err, ShouldBeNil)

		Convey("Defaults are used", func() {
			So(config.Addr, ShouldEqual, defaultAddr)
			So(config.Jobs, ShouldBeEmpty)
		})
	})

	Convey("Given a YAML config file", t, func() {
		config, err := Open(writeFile(t, "otk.yaml", yamlConfig))
		So(err, ShouldBeNil)

		So(config.Addr, ShouldEqual, ":9100")
		So(config.Location, ShouldResemble, timesystems.Location{Latitude: 43.65, Longitude: -79.38})
		So(config.Jobs, ShouldResemble, []Job{
			{Label: "porch", Schedule: "@sunset -30m"},
			{Label: "morning", Schedule: "0 7 * * *"},
		})
		So(config.Validate(), ShouldBeNil)
	})

	Convey("Given a JSON config file", t, func() {
		config, err := Open(writeFile(t, "otk.json", jsonConfig))
		So(err, ShouldBeNil)

		So(config.Addr, ShouldEqual, ":9200")
		So(config.Location.Latitude, ShouldEqual, 51.48)
		So(config.Jobs, ShouldHaveLength, 1)
	})

	Convey("Given env vars", t, func() {
		t.Setenv("OTK_ADDR", ":9300")
		t.Setenv("OTK_LOCATION_LATITUDE", "-33.86")

		config, err := Open(writeFile(t, "otk.yaml", yamlConfig))
		So(err, ShouldBeNil)

		Convey("They override the file", func() {
			So(config.Addr, ShouldEqual, ":9300")
			So(config.Location.Latitude, ShouldEqual, -33.86)
			So(config.Location.Longitude, ShouldEqual, -79.38)
		})
	})

	Convey("Given a missing config file", t, func() {
		_, err := Open(filepath.Join(t.TempDir(), "missing.yaml"))
		So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
	})

	Convey("Given a malformed config file", t, func() {
		_, err := Open(writeFile(t, "bad.yaml", "addr: [unterminated"))
		So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a valid config", t, func() {
		config := New()
		config.Location = timesystems.Location{Latitude: 43.65, Longitude: -79.38}
		config.Jobs = []Job{{Label: "porch", Schedule: "@sunset"}}

		So(config.Validate(), ShouldBeNil)

		Convey("An empty addr is rejected", func() {
			config.Addr = ""
			So(errors.Is(config.Validate(), ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("An out of range latitude is rejected", func() {
			config.Location.Latitude = 91
			So(errors.Is(config.Validate(), ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("An out of range longitude is rejected", func() {
			config.Location.Longitude = -181
			So(errors.Is(config.Validate(), ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("A bad schedule is rejected", func() {
			config.Jobs = append(config.Jobs, Job{Label: "never", Schedule: "@sunset whenever"})
			err := config.Validate()
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"never"`)
		})
	})
}
