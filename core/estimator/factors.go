package estimator

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Calibration constants. The piecewise speed curve is the canonical
// calibration; see DESIGN.md for the decision record.
const (
	lowSpeedKmh      = 20.0
	highSpeedKmh     = 100.0
	veryHighSpeedKmh = 120.0

	lowSpeedFactor      = 1.05
	highSpeedFactor     = 1.25
	veryHighSpeedFactor = 1.20
	speedTailExponent   = 1.0

	windDragShare   = 0.6
	windFactorFloor = 0.5
	minAeroSpeedKmh = 1.0

	idealTemperatureC = 22.0
	coldRatePerC      = 0.015
	hotRatePerC       = 0.010

	maxRecuperationEffect = 0.25

	slopeRatePerPercent = 0.02
	slopeFactorFloor    = 0.1
)

// MilesPerKm converts kilometers to statute miles.
const MilesPerKm = 0.621371

var speedCurve interp.PiecewiseLinear

func init() {
	xs := []float64{lowSpeedKmh, highSpeedKmh, veryHighSpeedKmh}
	ys := []float64{lowSpeedFactor, highSpeedFactor, veryHighSpeedFactor}
	if err := speedCurve.Fit(xs, ys); err != nil {
		panic(err)
	}
}

// SpeedFactor models how consumption varies with average speed relative to
// the 77 km/h reference cycle. Below 20 km/h the factor holds at 1.05
// because auxiliary loads dominate; between 20 and 120 km/h it follows the
// piecewise-linear calibration curve (the slight dip between 100 and
// 120 km/h is a calibration choice, not an error); above 120 km/h it grows
// as 1.20·(v/120)^1. Negative speeds clamp to zero.
func SpeedFactor(speedKmh float64) float64 {
	if speedKmh < 0 {
		speedKmh = 0
	}
	if speedKmh > veryHighSpeedKmh {
		return veryHighSpeedFactor * math.Pow(speedKmh/veryHighSpeedKmh, speedTailExponent)
	}
	// Predict extrapolates with the endpoint value, which yields the
	// low-speed clamp below 20 km/h.
	return speedCurve.Predict(speedKmh)
}

// WindFactor scales the aerodynamic share of consumption by the squared
// ratio of relative air speed to vehicle speed. A headwind (positive wind)
// raises the factor, a tailwind lowers it, floored at 0.5. Below 1 km/h of
// vehicle speed the factor is neutral to avoid dividing by a near-zero
// speed.
func WindFactor(speedKmh, windKmh float64) float64 {
	if speedKmh < minAeroSpeedKmh || windKmh == 0 {
		return 1
	}
	airKmh := speedKmh + windKmh
	if airKmh < 0 {
		airKmh = 0
	}
	ratio := airKmh / speedKmh
	f := (1 - windDragShare) + windDragShare*ratio*ratio
	if f < windFactorFloor {
		f = windFactorFloor
	}
	return f
}

// TemperatureFactor penalizes operation away from the 22 °C battery
// optimum: 1.5 % per °C below it, 1.0 % per °C above it.
func TemperatureFactor(temperatureC float64) float64 {
	if temperatureC < idealTemperatureC {
		return 1 + (idealTemperatureC-temperatureC)*coldRatePerC
	}
	return 1 + (temperatureC-idealTemperatureC)*hotRatePerC
}

// RecuperationFactor maps a 0–100 recuperation strength onto a consumption
// reduction capped at 25 %. Out-of-range input clamps to the boundary.
func RecuperationFactor(strengthPct float64) float64 {
	if strengthPct < 0 {
		strengthPct = 0
	}
	if strengthPct > 100 {
		strengthPct = 100
	}
	return 1 - strengthPct/100*maxRecuperationEffect
}

// SlopeFactor adds 2 % consumption per percent of uphill grade and removes
// the same per percent downhill, floored at 0.1 so steep descents cannot
// imply free travel.
func SlopeFactor(slopePercent float64) float64 {
	f := 1 + slopePercent*slopeRatePerPercent
	if f < slopeFactorFloor {
		f = slopeFactorFloor
	}
	return f
}

// BaseConsumptionWhPerKm converts the nominal kWh/100km figure to Wh/km.
func BaseConsumptionWhPerKm(consumptionKWhPer100Km float64) float64 {
	return consumptionKWhPer100Km * 10
}
