package daylight

import (
	"math"

	"github.com/gonum/floats"
)

// AngularVelocity returns the instantaneous angular velocity of the
// planet-sun line in radians per second at true anomaly ν (radians), from
// conservation of the specific angular momentum h = √(G·m·a·(1−e²)) and the
// orbit equation r = a(1−e²)/(1+e·cos ν). Unlike the series in TrueAnomaly,
// this relation is exact on a Keplerian ellipse.
//
// Hyperbolic and parabolic orbits (e ≥ 1) are out of scope and produce a
// non-finite result rather than an error.
func AngularVelocity(ν, a, e, massOfSun, g float64) float64 {
	if floats.EqualWithinAbs(e, 0, eccentricityε) {
		// Circular orbit: the rate is constant at the mean motion.
		return math.Sqrt(g * massOfSun / math.Pow(a, 3))
	}
	p := a * (1 - e*e)
	h := math.Sqrt(g * massOfSun * p)
	r := p / (1 + e*math.Cos(ν))
	return h / (r * r)
}
