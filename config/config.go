package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/voltlab/evrange/core/metrics"
	"github.com/voltlab/evrange/core/model"
)

// Config holds the vehicle and environment defaults used by the CLI
// together with the ambient settings.
type Config struct {
	Vehicle     VehicleConfig      `json:"vehicle"`
	Environment EnvironmentConfig  `json:"environment"`
	Metrics     coremetrics.Config `json:"metrics"`
	Logging     LoggingConfig      `json:"logging"`
}

// Default returns a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	var cfg Config
	cfg.Vehicle.SetDefaults()
	cfg.Environment.SetDefaults()
	cfg.Logging.SetDefaults()
	return &cfg
}

// Load reads the configuration file at path (yaml or json, chosen by
// extension) and applies EVR_-prefixed environment overrides, e.g.
// EVR_VEHICLE__BATTERY_KWH=80.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("EVR_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "evr_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Vehicle.SetDefaults()
	cfg.Environment.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Vehicle.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// VehicleConfig carries the default vehicle profile.
type VehicleConfig struct {
	BatteryKWh             float64 `json:"battery_kwh"`
	ConsumptionKWhPer100Km float64 `json:"consumption_kwh_per_100km"`
	SpeedKmh               float64 `json:"speed_kmh"`
}

// SetDefaults fills unset fields with a mid-size EV at the 77 km/h
// reference cycle speed.
func (c *VehicleConfig) SetDefaults() {
	if c.BatteryKWh == 0 {
		c.BatteryKWh = 66
	}
	if c.ConsumptionKWhPer100Km == 0 {
		c.ConsumptionKWhPer100Km = 16
	}
	if c.SpeedKmh == 0 {
		c.SpeedKmh = 77
	}
}

// Validate checks mandatory fields.
func (c VehicleConfig) Validate() error {
	if c.BatteryKWh <= 0 {
		return fmt.Errorf("vehicle.battery_kwh must be positive")
	}
	if c.ConsumptionKWhPer100Km <= 0 {
		return fmt.Errorf("vehicle.consumption_kwh_per_100km must be positive")
	}
	return nil
}

// ToProfile converts the configuration into the core model type.
func (c VehicleConfig) ToProfile() model.VehicleProfile {
	return model.VehicleProfile{
		BatteryKWh:             c.BatteryKWh,
		ConsumptionKWhPer100Km: c.ConsumptionKWhPer100Km,
		SpeedKmh:               c.SpeedKmh,
	}
}

// EnvironmentConfig carries the default environment parameters.
type EnvironmentConfig struct {
	WindKmh         float64 `json:"wind_kmh"`
	TemperatureC    float64 `json:"temperature_c"`
	SlopePercent    float64 `json:"slope_percent"`
	RecuperationPct float64 `json:"recuperation_pct"`
}

// SetDefaults applies the reference environment when the section is
// entirely absent. A partially filled section is taken as-is because zero
// is meaningful for every field.
func (c *EnvironmentConfig) SetDefaults() {
	if *c == (EnvironmentConfig{}) {
		c.TemperatureC = 20
		c.RecuperationPct = 70
	}
}

// ToEnvironment converts the configuration into the core model type.
func (c EnvironmentConfig) ToEnvironment() model.EnvironmentParameters {
	return model.EnvironmentParameters{
		WindKmh:         c.WindKmh,
		TemperatureC:    c.TemperatureC,
		SlopePercent:    c.SlopePercent,
		RecuperationPct: c.RecuperationPct,
	}
}
