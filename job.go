package timesystems

import (
	"log"
	"time"
)

// Job logs the current epoch under a label each time it runs.
//
// This implements robfig/cron.Job
type Job struct {
	Label  string
	Logger *log.Logger
	Now    func() time.Time
}

func (j Job) Run() {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	logger := j.Logger
	if logger == nil {
		logger = log.Default()
	}

	epoch := FromTime(now())
	jobRuns.WithLabelValues(j.Label).Inc()
	logger.Printf("%s: %s (JD TT %.6f, GMST %.6f rad)", j.Label, epoch, epoch.JulianTT(), epoch.GMST())
}
