package aggregate

import (
	"math"
	"testing"
)

func TestDepreciate_Linearity(t *testing.T) {
	// 3600 over 36 months = 100/month; 12-month period = 1200 total.
	s := Depreciate(3600, 12, 36)
	if math.Abs(s.Monthly-100) > 1e-9 {
		t.Errorf("expected monthly 100, got %f", s.Monthly)
	}
	if math.Abs(s.Total-1200) > 1e-9 {
		t.Errorf("expected total 1200, got %f", s.Total)
	}
}

func TestDepreciate_ZeroCapEx(t *testing.T) {
	s := Depreciate(0, 24, 36)
	if s.Monthly != 0 || s.Total != 0 {
		t.Errorf("expected zero schedule, got %+v", s)
	}
}

func TestDepreciate_CappedAtAssetCost(t *testing.T) {
	// 48 months of a 36-month life would overshoot; the cumulative charge
	// stops at the asset cost.
	s := Depreciate(3600, 48, 36)
	if math.Abs(s.Total-3600) > 1e-9 {
		t.Errorf("expected total capped at 3600, got %f", s.Total)
	}
	if math.Abs(s.Monthly-100) > 1e-9 {
		t.Errorf("monthly charge unchanged by the cap, got %f", s.Monthly)
	}
}
