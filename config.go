package daylight

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig reads a planet TOML file and returns a Config where every unset
// key keeps its Earth default. OrbitDay and Latitude are not part of the
// file; they describe the query, not the planet. The expected layout:
//
//	[orbit]
//	days_per_year = 686.98
//	eccentricity = 0.0934
//	semi_major_axis = 2.2794e11
//	last_solstice_day = 515
//
//	[planet]
//	axial_tilt = 25.19
//	seconds_per_day = 88775
//	refraction_at_sunset = 0.2
//
//	[sun]
//	mass = 1.989e30
//	radius = 6.9634e8
//
//	[physics]
//	gravitational_constant = 6.67408e-11
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("could not read %s: %s", path, err)
	}
	for key, field := range map[string]*float64{
		"orbit.days_per_year":            &cfg.DaysPerYear,
		"orbit.eccentricity":             &cfg.Eccentricity,
		"orbit.semi_major_axis":          &cfg.SemiMajorAxis,
		"orbit.last_solstice_day":        &cfg.LastSolsticeDay,
		"planet.axial_tilt":              &cfg.AxialTilt,
		"planet.seconds_per_day":         &cfg.SecondsPerDay,
		"planet.refraction_at_sunset":    &cfg.RefractionAtSunset,
		"sun.mass":                       &cfg.MassOfSun,
		"sun.radius":                     &cfg.SolarRadius,
		"physics.gravitational_constant": &cfg.GravitationalConstant,
	} {
		if v.IsSet(key) {
			*field = v.GetFloat64(key)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %s", path, err)
	}
	return cfg, nil
}
