package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voltlab/evrange/config"
	"github.com/voltlab/evrange/core/estimator"
	coremetrics "github.com/voltlab/evrange/core/metrics"
	"github.com/voltlab/evrange/core/model"
	"github.com/voltlab/evrange/infra/logger"
	"github.com/voltlab/evrange/infra/metrics"
)

// Service is the single call surface around the estimator: it applies the
// configured defaults, logs each invocation under a request id and records
// results to the metrics sink.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.MetricsSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	zerolog.SetGlobalLevel(cfg.Logging.ZerologLevel())
	logg := logger.New("service")

	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}
	return &Service{cfg: cfg, log: logg, sink: sink}, nil
}

// DefaultProfile returns the configured vehicle profile.
func (s *Service) DefaultProfile() model.VehicleProfile {
	return s.cfg.Vehicle.ToProfile()
}

// DefaultEnvironment returns the configured environment parameters.
func (s *Service) DefaultEnvironment() model.EnvironmentParameters {
	return s.cfg.Environment.ToEnvironment()
}

// Estimate runs the range estimation for the given snapshot of inputs.
func (s *Service) Estimate(p model.VehicleProfile, env model.EnvironmentParameters) (model.RangeEstimate, error) {
	id := uuid.NewString()
	res, err := estimator.Estimate(p, env)
	if err != nil {
		s.log.Errorf("estimate %s: %v", id, err)
		return model.RangeEstimate{}, err
	}
	adjusted := estimator.AdjustedConsumptionWhPerKm(p, env)
	s.log.Debugw("range estimated", map[string]any{
		"request_id":         id,
		"battery_kwh":        p.BatteryKWh,
		"speed_kmh":          p.SpeedKmh,
		"adjusted_wh_per_km": adjusted,
		"range_km":           res.RangeKm,
		"range_miles":        res.RangeMiles,
	})
	if err := s.sink.RecordEstimate(coremetrics.EstimateRecord{
		RequestID:       id,
		Profile:         p,
		Environment:     env,
		Result:          res,
		AdjustedWhPerKm: adjusted,
	}); err != nil {
		s.log.Warnf("metrics sink: %v", err)
	}
	return res, nil
}
