package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/app"
	"github.com/voltlab/evrange/config"
)

var (
	cfgPath string

	flagBattery      float64
	flagConsumption  float64
	flagSpeed        float64
	flagWind         float64
	flagTemperature  float64
	flagSlope        float64
	flagRecuperation float64
)

var rootCmd = &cobra.Command{
	Use:   "evrange",
	Short: "Estimate EV driving range from battery, speed and environment",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	fl := rootCmd.Flags()
	fl.Float64Var(&flagBattery, "battery", 0, "battery capacity in kWh")
	fl.Float64Var(&flagConsumption, "consumption", 0, "nominal consumption in kWh per 100 km")
	fl.Float64Var(&flagSpeed, "speed", 0, "average speed in km/h")
	fl.Float64Var(&flagWind, "wind", 0, "wind speed in km/h, positive = headwind")
	fl.Float64Var(&flagTemperature, "temperature", 0, "ambient temperature in °C")
	fl.Float64Var(&flagSlope, "slope", 0, "road grade in percent, positive = uphill")
	fl.Float64Var(&flagRecuperation, "recuperation", 0, "recuperation strength, 0-100")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	// Fall back to built-in defaults when the default config file is simply
	// absent; an explicitly named file must exist.
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}

	profile := svc.DefaultProfile()
	env := svc.DefaultEnvironment()
	fl := cmd.Flags()
	if fl.Changed("battery") {
		profile.BatteryKWh = flagBattery
	}
	if fl.Changed("consumption") {
		profile.ConsumptionKWhPer100Km = flagConsumption
	}
	if fl.Changed("speed") {
		profile.SpeedKmh = flagSpeed
	}
	if fl.Changed("wind") {
		env.WindKmh = flagWind
	}
	if fl.Changed("temperature") {
		env.TemperatureC = flagTemperature
	}
	if fl.Changed("slope") {
		env.SlopePercent = flagSlope
	}
	if fl.Changed("recuperation") {
		env.RecuperationPct = flagRecuperation
	}

	res, err := svc.Estimate(profile, env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d km (%d mi)\n", res.RangeKm, res.RangeMiles)
	return err
}
