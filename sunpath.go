package daylight

import (
	"math"

	kitlog "github.com/go-kit/kit/log"
)

// Declination returns the solar declination δ in radians at true anomaly ν,
// given the axial tilt θ (radians) and the true anomaly at the most recent
// winter solstice. The declination is modeled as sinusoidal in true anomaly
// rather than in true solar longitude, which holds for modest eccentricities
// and tilts.
func Declination(θ, ν, νSolstice float64) float64 {
	return θ * math.Cos(ν-νSolstice)
}

// DiscCenterDepression returns h₀ in radians, the angle of the disc center
// below the geometric horizon at which the sun's upper limb appears to touch
// the horizon. The apparent angular radius is taken at semi-major-axis
// distance rather than the instantaneous one, and refraction (radians) is a
// constant supplied by the caller.
func DiscCenterDepression(solarRadius, semiMajorAxis, refraction float64) float64 {
	return -2*math.Asin(solarRadius/semiMajorAxis) - refraction
}

// SolsticeAnomaly returns the true anomaly in radians at the most recent
// winter solstice.
func (c Config) SolsticeAnomaly() float64 {
	return TrueAnomaly(c.LastSolsticeDay, c.DaysPerYear, c.Eccentricity)
}

// SolarPathLength returns the angular length in radians of the sun's visible
// path across the sky on the day of true anomaly ν, i.e. 2·ω₀ where ω₀ is
// the hour angle at sunrise/sunset from the generalized sunrise equation
//
//	cos ω₀ = (sin h₀ − sin φ·sin δ) / (cos φ·cos δ)
//
// When the sun never sets (polar day) cos ω₀ falls below −1 and the result
// is NaN; when it never rises (polar night) cos ω₀ exceeds 1, also NaN. The
// poles themselves degenerate the division. Callers must tolerate the NaN
// rather than expect a saturated 2π or 0; a tagged result distinguishing the
// three cases would be the compatible upgrade path.
func (c Config) SolarPathLength(ν float64, logger kitlog.Logger) float64 {
	θ := c.AxialTilt * deg2rad
	φ := c.Latitude * deg2rad
	νSolstice := c.SolsticeAnomaly()
	δ := Declination(θ, ν, νSolstice)
	h0 := DiscCenterDepression(c.SolarRadius, c.SemiMajorAxis, c.RefractionAtSunset*deg2rad)
	trace(logger, "solsticeAnomalyDeg", Rad2deg(νSolstice), "declinationDeg", δ/deg2rad, "discCenterDeg", h0/deg2rad)
	cosω0 := (math.Sin(h0) - math.Sin(φ)*math.Sin(δ)) / (math.Cos(φ) * math.Cos(δ))
	return 2 * math.Acos(cosω0)
}
