package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	timesystems "github.com/brandon-sexton/otk-time-systems"
	"github.com/brandon-sexton/otk-time-systems/config"
)

const usageText = `usage: otk [-config file] <command> [args]

commands:
  convert <iso>...      report on UTC timestamps, e.g. 2018-08-08T08:08:08.888Z
  format <jd>...        format TT Julian dates as UTC timestamps
  gmst [iso]            Greenwich mean sidereal time, now by default
  sun [date]            solar transit, sunrise and sunset at the configured location
  serve                 run scheduled jobs and the HTTP API
`

func main() {
	configFile := flag.String("config", os.Getenv("OTK_CONFIG"), "path to YAML or JSON config file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	command, args := flag.Arg(0), flag.Args()[1:]

	var err error
	switch command {
	case "convert":
		err = convert(os.Stdout, args)
	case "format":
		err = format(os.Stdout, args)
	case "gmst":
		err = gmst(os.Stdout, args, time.Now)
	case "sun":
		cfg := openConfig(*configFile)
		err = sun(os.Stdout, cfg.Location, args, time.Now)
	case "serve":
		serve(openConfig(*configFile))
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("ERR: %s: %s", command, err)
	}
}

func openConfig(filename string) *config.Config {
	cfg, err := config.Open(filename)
	if err != nil {
		log.Fatalf("ERR: read config failed: %s", err)
	}

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("ERR: %s", err)
	}

	return cfg
}

func serve(cfg *config.Config) {
	now := time.Now() // used for logging cron entries
	jobCron := cron.New()
	for _, job := range cfg.Jobs {
		schedule, err := timesystems.ParseSchedule(job.Schedule, cfg.Location)
		if err != nil {
			log.Printf("ERR: parse schedule: %s", err)
			continue
		}

		jobCron.Schedule(schedule, timesystems.Job{Label: job.Label})
		log.Printf("job: %s: %s", timesystems.FromTime(schedule.Next(now)), job.Label)
	}

	srv := &timesystems.Server{Location: cfg.Location}
	httpServer := http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Routes(),
	}
	log.Printf("listening on %s", httpServer.Addr)

	jobCron.Start()
	log.Fatal(httpServer.ListenAndServe())
}
