package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	timesystems "github.com/brandon-sexton/otk-time-systems"
)

const (
	envPrefix   = "OTK_"
	defaultAddr = ":9000"
)

// Config for the otk daemon and the commands that need a location.
//
// Files are read as YAML, so JSON config files work unchanged.
type Config struct {
	Addr     string               `koanf:"addr"`
	Location timesystems.Location `koanf:"location"`
	Jobs     []Job                `koanf:"jobs"`
}

// Job logs the current epoch under Label on Schedule. Schedule is a
// standard cron spec or "@sunrise"/"@sunset" with an optional offset,
// e.g. "@sunset -30m".
type Job struct {
	Label    string `koanf:"label"`
	Schedule string `koanf:"schedule"`
}

// New returns the default configuration
func New() *Config {
	return &Config{
		Addr: defaultAddr,
	}
}

// Open builds a Config by layering, lowest precedence first:
//  1. defaults (New)
//  2. the YAML file at filename, if filename is not empty
//  3. env vars prefixed OTK_, e.g. OTK_ADDR or OTK_LOCATION_LATITUDE
func Open(filename string) (*Config, error) {
	k := koanf.New(".")

	if filename != "" {
		err := k.Load(file.Provider(filename), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("%w: read config file: %s", ErrLoadConfig, err)
		}
	}

	// OTK_LOCATION_LATITUDE -> location.latitude
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	})
	err := k.Load(envProvider, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: read env: %s", ErrLoadConfig, err)
	}

	config := *New()
	err = k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "koanf"})
	if err != nil {
		return nil, fmt.Errorf("%w: decode config: %s", ErrLoadConfig, err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}

	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidConfig, c.Location.Latitude)
	}

	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidConfig, c.Location.Longitude)
	}

	for _, job := range c.Jobs {
		_, err := timesystems.ParseSchedule(job.Schedule, c.Location)
		if err != nil {
			return fmt.Errorf("%w: job %q: %s", ErrInvalidConfig, job.Label, err)
		}
	}

	return nil
}
