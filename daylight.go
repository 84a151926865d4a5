package daylight

import (
	"fmt"
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// perihelionJD is the Julian day of Earth's 2025 perihelion passage
// (2025-01-04 13:40 UTC), the epoch anchoring OrbitDayForDate.
const perihelionJD = 2460680.0694

// Config holds the orbital and planetary parameters of a day-length
// computation. All public angles are degrees, distances meters and masses
// kilograms; angles are converted to radians exactly once inside the
// computation. OrbitDay and Latitude carry no useful default and must be set
// by the caller; every other field has a documented Earth value in
// DefaultConfig.
type Config struct {
	OrbitDay float64 // days since perihelion; may exceed DaysPerYear
	Latitude float64 // degrees, in [-90, 90]

	DaysPerYear           float64 // orbital period in days
	Eccentricity          float64 // accuracy degrades for e over ~0.1
	SemiMajorAxis         float64 // meters
	MassOfSun             float64 // kilograms
	AxialTilt             float64 // degrees; Earth's -23.44 puts the northern winter solstice near perihelion
	SecondsPerDay         float64 // length of a solar day in seconds
	SolarRadius           float64 // meters; 0 treats the sun as a point source
	RefractionAtSunset    float64 // degrees
	LastSolsticeDay       float64 // days since perihelion of the most recent winter solstice
	GravitationalConstant float64 // m³·kg⁻¹·s⁻², overridable for alternate physics
}

// DefaultConfig returns the Earth configuration. These values are relied
// upon by existing callers and must not drift.
func DefaultConfig() Config {
	return Config{
		DaysPerYear:           365.259,
		Eccentricity:          0.0167,
		SemiMajorAxis:         1.496e11,
		MassOfSun:             1.989e30,
		AxialTilt:             -23.44,
		SecondsPerDay:         86400,
		SolarRadius:           6.9634e8,
		RefractionAtSunset:    0.3,
		LastSolsticeDay:       349,
		GravitationalConstant: 6.67408e-11,
	}
}

// Validate returns an error for configurations which can only produce
// non-finite results. DaylightHours does not call it: for parity with
// existing callers, invalid inputs propagate to NaN or ±Inf instead of
// failing early.
func (c Config) Validate() error {
	if c.OrbitDay < 0 {
		return fmt.Errorf("orbit day %f is negative", c.OrbitDay)
	}
	if c.DaysPerYear <= 0 {
		return fmt.Errorf("days per year %f must be positive", c.DaysPerYear)
	}
	if c.SecondsPerDay <= 0 {
		return fmt.Errorf("seconds per day %f must be positive", c.SecondsPerDay)
	}
	if c.SemiMajorAxis <= 0 {
		return fmt.Errorf("semi major axis %f must be positive", c.SemiMajorAxis)
	}
	if c.MassOfSun <= 0 {
		return fmt.Errorf("solar mass %f must be positive", c.MassOfSun)
	}
	if c.Eccentricity < 0 || c.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity %f must be in [0, 1)", c.Eccentricity)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f must be in [-90, 90]", c.Latitude)
	}
	if c.SolarRadius < 0 {
		return fmt.Errorf("solar radius %f must not be negative", c.SolarRadius)
	}
	return nil
}

// TrueAnomaly returns the true anomaly in radians at c.OrbitDay.
func (c Config) TrueAnomaly() float64 {
	return TrueAnomaly(c.OrbitDay, c.DaysPerYear, c.Eccentricity)
}

// AngularVelocity returns the angular velocity of the planet-sun line in
// radians per second at true anomaly ν.
func (c Config) AngularVelocity(ν float64) float64 {
	return AngularVelocity(ν, c.SemiMajorAxis, c.Eccentricity, c.MassOfSun, c.GravitationalConstant)
}

// OrbitDayForDate returns the days elapsed between the most recent
// perihelion passage and t, wrapped into [0, DaysPerYear). Only meaningful
// for Earth-period configurations since the epoch is Earth's.
func (c Config) OrbitDayForDate(t time.Time) float64 {
	days := math.Mod(julian.TimeToJD(t)-perihelionJD, c.DaysPerYear)
	if days < 0 {
		days += c.DaysPerYear
	}
	return days
}

// DaylightHours returns the number of daylight hours at c.Latitude on
// c.OrbitDay. The result is NaN on days of polar day or polar night and at
// the poles, see SolarPathLength.
func DaylightHours(cfg Config) float64 {
	return DaylightHoursTraced(cfg, nil)
}

// DaylightHoursTraced is DaylightHours with every intermediate value logged
// to the provided logger (see NewTracer). A nil logger disables tracing.
func DaylightHoursTraced(cfg Config, logger kitlog.Logger) float64 {
	ν := cfg.TrueAnomaly()
	ω := cfg.AngularVelocity(ν)
	pathLength := cfg.SolarPathLength(ν, logger)
	daySeconds := pathLength / MeanSolarAngularVelocity(cfg.SecondsPerDay)
	trace(logger, "trueAnomalyDeg", Rad2deg(ν), "angularVelRadSec", ω,
		"pathLengthDeg", pathLength/deg2rad, "daySeconds", daySeconds)
	return daySeconds / 3600
}

// DaylightHours is the method form of the package-level entry point.
func (c Config) DaylightHours() float64 {
	return DaylightHoursTraced(c, nil)
}
