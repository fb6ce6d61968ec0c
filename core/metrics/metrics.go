// Package metrics defines the sink interface used to record computed range
// estimates. The prometheus-backed implementation lives in infra/metrics;
// NopSink is the default when no sink is configured.
package metrics

import "github.com/voltlab/evrange/core/model"

// EstimateRecord describes one completed estimation.
type EstimateRecord struct {
	RequestID       string
	Profile         model.VehicleProfile
	Environment     model.EnvironmentParameters
	Result          model.RangeEstimate
	AdjustedWhPerKm float64
}

// MetricsSink records estimate events.
type MetricsSink interface {
	RecordEstimate(EstimateRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEstimate(EstimateRecord) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
}
