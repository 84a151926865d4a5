package daylight

import (
	"math"
)

// MeanAnomaly returns the mean anomaly in radians after orbitDay days since
// perihelion. orbitDay may exceed daysPerYear; the returned angle is *not*
// reduced mod 2π.
func MeanAnomaly(orbitDay, daysPerYear float64) float64 {
	return 2 * math.Pi * orbitDay / daysPerYear
}

// TrueAnomaly returns the true anomaly in radians after orbitDay days since
// perihelion, via the equation of center truncated to third order in the
// eccentricity. The truncation error grows as e⁴, so this is only trustworthy
// for eccentricities well under 0.1. Like MeanAnomaly, the result is not
// reduced mod 2π.
func TrueAnomaly(orbitDay, daysPerYear, e float64) float64 {
	M := MeanAnomaly(orbitDay, daysPerYear)
	return M + (2*e-math.Pow(e, 3)/4)*math.Sin(M) +
		(5/4.)*math.Pow(e, 2)*math.Sin(2*M) +
		(13/12.)*math.Pow(e, 3)*math.Sin(3*M)
}

// MeanSolarAngularVelocity returns the mean angular velocity of the sun
// across the sky in radians per second, for a solar day of the given length.
func MeanSolarAngularVelocity(secondsPerDay float64) float64 {
	return 2 * math.Pi / secondsPerDay
}
