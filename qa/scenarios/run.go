package scenarios

import (
	"fmt"
	"testing"

	"github.com/voltlab/evrange/core/estimator"
	"github.com/voltlab/evrange/core/model"
)

// CaseResult is the outcome of evaluating one case.
type CaseResult struct {
	Name     string
	Estimate model.RangeEstimate
	Expected Expected
	Pass     bool
}

// Evaluate runs every case of the scenario through the estimator and checks
// the resulting range against the expected band.
func Evaluate(sc *Scenario) ([]CaseResult, error) {
	out := make([]CaseResult, 0, len(sc.Cases))
	for _, c := range sc.Cases {
		res, err := estimator.Estimate(c.Vehicle.ToProfile(), c.Environment.ToEnvironment())
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", c.Name, err)
		}
		pass := res.RangeKm >= c.Expected.MinKm && res.RangeKm <= c.Expected.MaxKm
		out = append(out, CaseResult{Name: c.Name, Estimate: res, Expected: c.Expected, Pass: pass})
	}
	return out, nil
}

// RunScenario evaluates the scenario and reports out-of-band cases as test
// failures.
func RunScenario(t *testing.T, sc *Scenario) {
	results, err := Evaluate(sc)
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}
	for _, r := range results {
		if !r.Pass {
			t.Errorf("scenario %s case %s: %d km outside [%d, %d]",
				sc.Name, r.Name, r.Estimate.RangeKm, r.Expected.MinKm, r.Expected.MaxKm)
		}
	}
}
