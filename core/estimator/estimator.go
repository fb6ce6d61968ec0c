package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/voltlab/evrange/core/model"
)

// ErrInvalidProfile reports a profile that cannot produce a meaningful
// range: non-positive battery capacity or nominal consumption.
var ErrInvalidProfile = errors.New("invalid vehicle profile")

// AdjustedConsumptionWhPerKm combines the base consumption with all
// correction factors. The result is strictly positive whenever the nominal
// consumption is positive, because every factor is bounded below by a
// positive floor.
func AdjustedConsumptionWhPerKm(p model.VehicleProfile, env model.EnvironmentParameters) float64 {
	return BaseConsumptionWhPerKm(p.ConsumptionKWhPer100Km) *
		SpeedFactor(p.SpeedKmh) *
		WindFactor(p.SpeedKmh, env.WindKmh) *
		TemperatureFactor(env.TemperatureC) *
		RecuperationFactor(env.RecuperationPct) *
		SlopeFactor(env.SlopePercent)
}

// Estimate computes the remaining range for the given profile and
// environment. Rounding is half away from zero (math.Round) for both the
// kilometer and mile figures. It returns ErrInvalidProfile (wrapped) when
// the profile fails validation; all other numeric inputs are clamped by the
// factor functions and never cause an error.
func Estimate(p model.VehicleProfile, env model.EnvironmentParameters) (model.RangeEstimate, error) {
	if err := p.Validate(); err != nil {
		return model.RangeEstimate{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	adjusted := AdjustedConsumptionWhPerKm(p, env)
	if adjusted <= 0 || math.IsNaN(adjusted) || math.IsInf(adjusted, 0) {
		// Unreachable for validated profiles with finite environment input.
		return model.RangeEstimate{}, fmt.Errorf("%w: adjusted consumption %v Wh/km", ErrInvalidProfile, adjusted)
	}
	km := math.Round(p.BatteryKWh * 1000 / adjusted)
	mi := math.Round(km * MilesPerKm)
	return model.RangeEstimate{RangeKm: int(km), RangeMiles: int(mi)}, nil
}
