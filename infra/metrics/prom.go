package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/voltlab/evrange/core/metrics"
)

// PromSink records range estimates in Prometheus metrics.
type PromSink struct {
	estimates prometheus.Counter
	rangeKm   prometheus.Histogram
}

// NewPromSink registers estimate metrics on the default Prometheus
// registerer.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	estimates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "range_estimates_total",
		Help: "Total number of range estimates computed",
	})
	rangeKm := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "range_estimate_km",
		Help:    "Distribution of estimated driving ranges in kilometers",
		Buckets: prometheus.LinearBuckets(50, 50, 12),
	})

	if err := reg.Register(estimates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			estimates = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rangeKm); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rangeKm = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{estimates: estimates, rangeKm: rangeKm}, nil
}

// RecordEstimate counts the estimate and observes its range.
func (s *PromSink) RecordEstimate(rec coremetrics.EstimateRecord) error {
	s.estimates.Inc()
	s.rangeKm.Observe(float64(rec.Result.RangeKm))
	return nil
}
