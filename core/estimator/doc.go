// Package estimator computes the remaining driving range of an electric
// vehicle from a vehicle profile and a set of environment parameters.
//
// The model is a chain of independent, dimensionless correction factors
// applied to the nominal consumption figure. Each factor centers on 1.0 at
// its reference condition (77 km/h combined cycle, calm air, 22 °C, flat
// road, no recuperation) and clamps out-of-domain input instead of failing.
// Factors do not depend on each other's output, so the combination is
// commutative:
//
//	adjusted = base × speed × wind × temperature × recuperation × slope
//	rangeKm  = round(batteryKWh × 1000 / adjusted)
//
// Every function in this package is pure; repeated calls with the same
// input return the same result and concurrent callers need no coordination.
package estimator
