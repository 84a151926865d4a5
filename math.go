package daylight

import (
	"math"
)

const (
	deg2rad = math.Pi / 180

	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
)

// Deg2rad converts degrees to radians, and enforces only positive numbers.
// Use this for anomalies and other angles which live in [0, 2π); signed
// quantities such as latitudes and tilts are converted with deg2rad directly.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
