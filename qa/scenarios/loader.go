package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltlab/evrange/core/model"
)

type VehicleDef struct {
	BatteryKWh             float64 `yaml:"battery_kwh"`
	ConsumptionKWhPer100Km float64 `yaml:"consumption_kwh_per_100km"`
	SpeedKmh               float64 `yaml:"speed_kmh"`
}

func (v VehicleDef) ToProfile() model.VehicleProfile {
	return model.VehicleProfile{
		BatteryKWh:             v.BatteryKWh,
		ConsumptionKWhPer100Km: v.ConsumptionKWhPer100Km,
		SpeedKmh:               v.SpeedKmh,
	}
}

type EnvironmentDef struct {
	WindKmh         float64 `yaml:"wind_kmh"`
	TemperatureC    float64 `yaml:"temperature_c"`
	SlopePercent    float64 `yaml:"slope_percent"`
	RecuperationPct float64 `yaml:"recuperation_pct"`
}

func (e EnvironmentDef) ToEnvironment() model.EnvironmentParameters {
	return model.EnvironmentParameters{
		WindKmh:         e.WindKmh,
		TemperatureC:    e.TemperatureC,
		SlopePercent:    e.SlopePercent,
		RecuperationPct: e.RecuperationPct,
	}
}

// Expected is the acceptance band for one case, in whole kilometers.
type Expected struct {
	MinKm int `yaml:"min_km"`
	MaxKm int `yaml:"max_km"`
}

type CaseDef struct {
	Name        string         `yaml:"name"`
	Vehicle     VehicleDef     `yaml:"vehicle"`
	Environment EnvironmentDef `yaml:"environment"`
	Expected    Expected       `yaml:"expected"`
}

type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Cases       []CaseDef `yaml:"cases"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
