package app

import (
	"errors"
	"testing"

	"github.com/voltlab/evrange/config"
	"github.com/voltlab/evrange/core/estimator"
	"github.com/voltlab/evrange/core/model"
)

func TestServiceEstimateDefaults(t *testing.T) {
	svc, err := New(config.Default())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	res, err := svc.Estimate(svc.DefaultProfile(), svc.DefaultEnvironment())
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if res.RangeKm < 390 || res.RangeKm > 415 {
		t.Errorf("default range %d km outside [390, 415]", res.RangeKm)
	}
	if res.RangeMiles <= 0 {
		t.Errorf("expected positive mile figure, got %d", res.RangeMiles)
	}
}

func TestServiceEstimateInvalidProfile(t *testing.T) {
	svc, err := New(config.Default())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	_, err = svc.Estimate(model.VehicleProfile{}, svc.DefaultEnvironment())
	if !errors.Is(err, estimator.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}
