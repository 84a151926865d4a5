package daylight

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestAngles(t *testing.T) {
	for i := 0.0; i < 360; i += 0.5 {
		if ok, err := anglesEqual(Deg2rad(i), Deg2rad(Rad2deg(Deg2rad(i)))); !ok {
			t.Fatalf("incorrect roundtrip for %3.2f: %s", i, err)
		}
	}
	if Rad2deg(Deg2rad(360)) != 0 {
		t.Fatal("incorrect conversion for 360")
	}
	if ok, _ := anglesEqual(Deg2rad(1), Deg2rad(-359.)); !ok {
		t.Fatal("incorrect conversion for -359")
	}
	if ok, _ := anglesEqual(math.Pi/3, Deg2rad(Rad2deg(-5*math.Pi/3))); !ok {
		t.Fatal("incorrect conversion for -pi/3")
	}
	if !floats.EqualWithinAbs(Deg2rad(90), math.Pi/2, 1e-12) {
		t.Fatal("90 degrees is not pi/2")
	}
	if !floats.EqualWithinAbs(Rad2deg(3*math.Pi/2), 270, 1e-12) {
		t.Fatal("3pi/2 is not 270 degrees")
	}
}
