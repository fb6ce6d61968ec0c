package model

import "fmt"

// VehicleProfile describes the battery and consumption characteristics of a
// single vehicle together with the driver's average speed.
type VehicleProfile struct {
	BatteryKWh             float64 // usable battery capacity in kWh
	ConsumptionKWhPer100Km float64 // nominal consumption figure, kWh per 100 km
	SpeedKmh               float64 // average driving speed in km/h, clamped to 0 when negative
}

// Validate checks that the profile is sound. Battery capacity and nominal
// consumption must be positive; speed is unconstrained because the estimator
// clamps it.
func (p VehicleProfile) Validate() error {
	if p.BatteryKWh <= 0 {
		return fmt.Errorf("battery capacity must be positive")
	}
	if p.ConsumptionKWhPer100Km <= 0 {
		return fmt.Errorf("nominal consumption must be positive")
	}
	return nil
}

// EnvironmentParameters captures the secondary conditions that correct the
// nominal consumption figure.
type EnvironmentParameters struct {
	WindKmh         float64 // positive = headwind, negative = tailwind
	TemperatureC    float64 // ambient temperature in °C
	SlopePercent    float64 // road grade, positive = uphill
	RecuperationPct float64 // braking energy recovery strength, expected [0,100]
}

// RangeEstimate is the result of one estimation. It is produced fresh on
// every call and never mutated afterwards.
type RangeEstimate struct {
	RangeKm    int
	RangeMiles int
}
