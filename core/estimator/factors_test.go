package estimator

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSpeedFactorLowSpeedClamp(t *testing.T) {
	for _, v := range []float64{-50, -1, 0, 5, 19.9, 20} {
		if got := SpeedFactor(v); !almostEqual(got, 1.05, tol) {
			t.Errorf("SpeedFactor(%v) = %v, expected 1.05", v, got)
		}
	}
}

func TestSpeedFactorLinearRegions(t *testing.T) {
	cases := []struct {
		speed, want float64
	}{
		{60, 1.15},   // halfway between 20 and 100
		{80, 1.20},   // three quarters up the first segment
		{100, 1.25},  // high-speed knot
		{110, 1.225}, // midway on the dipping segment
		{120, 1.20},  // very-high knot
	}
	for _, c := range cases {
		if got := SpeedFactor(c.speed); !almostEqual(got, c.want, 1e-9) {
			t.Errorf("SpeedFactor(%v) = %v, expected %v", c.speed, got, c.want)
		}
	}
}

func TestSpeedFactorContinuityAtBreakpoints(t *testing.T) {
	for _, bp := range []float64{20, 100, 120} {
		below := SpeedFactor(bp - 1e-6)
		at := SpeedFactor(bp)
		if !almostEqual(below, at, 1e-4) {
			t.Errorf("discontinuity at %v km/h: %v vs %v", bp, below, at)
		}
	}
}

func TestSpeedFactorPowerLawTail(t *testing.T) {
	if got := SpeedFactor(240); !almostEqual(got, 2.4, tol) {
		t.Errorf("SpeedFactor(240) = %v, expected 2.4", got)
	}
	// Tail must keep growing.
	if SpeedFactor(180) <= SpeedFactor(130) {
		t.Errorf("tail is not increasing: f(180)=%v f(130)=%v", SpeedFactor(180), SpeedFactor(130))
	}
}

func TestWindFactorNeutral(t *testing.T) {
	for _, v := range []float64{1, 30, 80, 130} {
		if got := WindFactor(v, 0); got != 1 {
			t.Errorf("WindFactor(%v, 0) = %v, expected 1", v, got)
		}
	}
	// Below 1 km/h the factor is neutral regardless of wind.
	if got := WindFactor(0.5, 40); got != 1 {
		t.Errorf("WindFactor(0.5, 40) = %v, expected 1", got)
	}
}

func TestWindFactorHeadAndTailwind(t *testing.T) {
	head := WindFactor(80, 20)
	tail := WindFactor(80, -20)
	if !almostEqual(head, 1.3375, tol) {
		t.Errorf("headwind factor = %v, expected 1.3375", head)
	}
	if !almostEqual(tail, 0.7375, tol) {
		t.Errorf("tailwind factor = %v, expected 0.7375", tail)
	}
	// The squared ratio makes the effect asymmetric around 1.
	if almostEqual(head-1, 1-tail, tol) {
		t.Errorf("wind effect unexpectedly symmetric: +%v vs -%v", head-1, 1-tail)
	}
	if head-1 <= 1-tail {
		t.Errorf("headwind penalty %v should exceed tailwind gain %v", head-1, 1-tail)
	}
}

func TestWindFactorFloor(t *testing.T) {
	// Air speed clamps to zero, leaving only the drag-independent share,
	// which is then floored at 0.5.
	if got := WindFactor(80, -200); got != 0.5 {
		t.Errorf("WindFactor(80, -200) = %v, expected floor 0.5", got)
	}
}

func TestTemperatureFactor(t *testing.T) {
	if got := TemperatureFactor(22); got != 1 {
		t.Fatalf("TemperatureFactor(22) = %v, expected exactly 1", got)
	}
	cold := TemperatureFactor(12)
	hot := TemperatureFactor(32)
	if !almostEqual(cold, 1.15, tol) {
		t.Errorf("TemperatureFactor(12) = %v, expected 1.15", cold)
	}
	if !almostEqual(hot, 1.10, tol) {
		t.Errorf("TemperatureFactor(32) = %v, expected 1.10", hot)
	}
	if cold-1 <= hot-1 {
		t.Errorf("cold penalty %v should exceed hot penalty %v", cold-1, hot-1)
	}
}

func TestRecuperationFactor(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 1},
		{50, 0.875},
		{100, 0.75},
		{-5, 1},     // clamps low
		{150, 0.75}, // clamps high
	}
	for _, c := range cases {
		if got := RecuperationFactor(c.in); !almostEqual(got, c.want, tol) {
			t.Errorf("RecuperationFactor(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestRecuperationFactorMonotonic(t *testing.T) {
	prev := RecuperationFactor(0)
	for s := 1.0; s <= 100; s++ {
		cur := RecuperationFactor(s)
		if cur > prev {
			t.Fatalf("RecuperationFactor increased at %v: %v > %v", s, cur, prev)
		}
		prev = cur
	}
}

func TestSlopeFactor(t *testing.T) {
	if got := SlopeFactor(0); got != 1 {
		t.Fatalf("SlopeFactor(0) = %v, expected 1", got)
	}
	if got := SlopeFactor(5); !almostEqual(got, 1.1, tol) {
		t.Errorf("SlopeFactor(5) = %v, expected 1.1", got)
	}
	if got := SlopeFactor(-100); got != 0.1 {
		t.Errorf("SlopeFactor(-100) = %v, expected floor 0.1", got)
	}
	if got := SlopeFactor(-50); got != 0.1 {
		t.Errorf("SlopeFactor(-50) = %v, expected floor 0.1", got)
	}
}

func TestBaseConsumptionWhPerKm(t *testing.T) {
	for _, c := range []float64{0.1, 14, 16, 22.5} {
		if got := BaseConsumptionWhPerKm(c); !almostEqual(got, c*10, tol) {
			t.Errorf("BaseConsumptionWhPerKm(%v) = %v, expected %v", c, got, c*10)
		}
	}
}
