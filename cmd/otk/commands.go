package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	timesystems "github.com/brandon-sexton/otk-time-systems"
	"github.com/brandon-sexton/otk-time-systems/units"
)

func convert(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one timestamp is required")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EPOCH\tJD UTC\tJD TT\tMJD\tDAYS J2000\tCENTURIES J2000\tGMST")
	for _, arg := range args {
		epoch, err := timesystems.Parse(arg)
		if err != nil {
			return err
		}

		r := timesystems.NewReport(epoch)
		fmt.Fprintf(tw, "%s\t%.9f\t%.9f\t%.9f\t%.9f\t%.12f\t%.9f\n",
			r.Epoch, r.JulianUTC, r.JulianTT, r.MJD, r.DaysPastJ2000, r.CenturiesPastJ2000, r.GMST)
	}

	return tw.Flush()
}

func format(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one Julian date is required")
	}

	for _, arg := range args {
		jd, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parse julian date: %w", err)
		}
		fmt.Fprintln(w, timesystems.FromJulianTT(jd))
	}

	return nil
}

func gmst(w io.Writer, args []string, now func() time.Time) error {
	epoch := timesystems.FromTime(now())
	switch len(args) {
	case 0:
	case 1:
		var err error
		epoch, err = timesystems.Parse(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected at most one timestamp, got %d", len(args))
	}

	radians := epoch.GMST()
	fmt.Fprintf(w, "%s  %.9f rad  %.6f deg\n", epoch, radians, units.RadiansToDegrees(radians))
	return nil
}

func sun(w io.Writer, loc timesystems.Location, args []string, now func() time.Time) error {
	epoch := timesystems.FromTime(now())
	switch len(args) {
	case 0:
	case 1:
		var err error
		epoch, err = timesystems.ParseDate(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected at most one date, got %d", len(args))
	}

	events := loc.SunEvents(epoch)
	fmt.Fprintf(w, "transit  %s\n", events.Transit)
	if events.Polar {
		fmt.Fprintln(w, "no sunrise or sunset")
		return nil
	}

	fmt.Fprintf(w, "sunrise  %s\n", *events.Sunrise)
	fmt.Fprintf(w, "sunset   %s\n", *events.Sunset)
	return nil
}
