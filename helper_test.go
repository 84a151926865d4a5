package daylight

import (
	"fmt"
	"math"
)

// anglesEqual compares two angles in radians regardless of winding.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(a-b, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("angles differ by %f radians", diff)
}

// keplerTrueAnomaly solves Kepler's equation by Newton iteration and returns
// the exact true anomaly, as a yardstick for the truncated series.
func keplerTrueAnomaly(M, e float64) float64 {
	E := M
	for i := 0; i < 50; i++ {
		E -= (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
	}
	sinν := math.Sqrt(1-e*e) * math.Sin(E) / (1 - e*math.Cos(E))
	cosν := (math.Cos(E) - e) / (1 - e*math.Cos(E))
	return math.Atan2(sinν, cosν)
}
