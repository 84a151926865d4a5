package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"

	daylight "github.com/KMarshland/hours-of-daylight"
)

// This binary only marshals flags into the library call and prints the
// resulting hours value.

const dateFormat = "2006-01-02"

var (
	orbitDay float64
	date     string
	latitude float64
	planet   string
	verbose  bool
)

func init() {
	flag.Float64Var(&orbitDay, "day", -1, "days since perihelion")
	flag.StringVar(&date, "date", "", "civil date ("+dateFormat+"), alternative to -day")
	flag.Float64Var(&latitude, "lat", math.NaN(), "latitude in degrees")
	flag.StringVar(&planet, "planet", "", "planet TOML file overriding the Earth defaults")
	flag.BoolVar(&verbose, "v", false, "trace intermediate values")
}

func main() {
	flag.Parse()
	cfg := daylight.DefaultConfig()
	if planet != "" {
		var err error
		if cfg, err = daylight.LoadConfig(planet); err != nil {
			log.Fatalf("could not load planet: %s", err)
		}
	}
	if math.IsNaN(latitude) {
		log.Fatal("no latitude provided")
	}
	cfg.Latitude = latitude
	switch {
	case date != "":
		dt, err := time.Parse(dateFormat, date)
		if err != nil {
			log.Fatalf("could not understand date `%s`: %s", date, err)
		}
		cfg.OrbitDay = cfg.OrbitDayForDate(dt.UTC())
	case orbitDay >= 0:
		cfg.OrbitDay = orbitDay
	default:
		log.Fatal("provide either -day or -date")
	}
	var logger kitlog.Logger
	if verbose {
		logger = daylight.NewTracer(os.Stderr)
	}
	fmt.Printf("%.4f\n", daylight.DaylightHoursTraced(cfg, logger))
}
