package model

import "testing"

func TestTenorSpecs(t *testing.T) {
	tests := []struct {
		tenor  Tenor
		period int
		label  string
		color  string
		code   string
	}{
		{Tenor1W, 7, "1w", "#1f77b4", "W01"},
		{Tenor1M, 30, "1m", "#ff7f0e", "M01"},
		{Tenor3M, 90, "3m", "#2ca02c", "M03"},
		{Tenor6M, 180, "6m", "#d62728", "M06"},
		{Tenor12M, 360, "12m", "#9467bd", "M12"},
	}
	for _, tc := range tests {
		spec := tc.tenor.Spec()
		if spec.PeriodDays != tc.period {
			t.Errorf("%s: expected period %d, got %d", tc.label, tc.period, spec.PeriodDays)
		}
		if spec.Label != tc.label || tc.tenor.String() != tc.label {
			t.Errorf("expected label %q, got %q", tc.label, spec.Label)
		}
		if spec.Color != tc.color {
			t.Errorf("%s: expected color %s, got %s", tc.label, tc.color, spec.Color)
		}
		if spec.Code != tc.code {
			t.Errorf("%s: expected code %s, got %s", tc.label, tc.code, spec.Code)
		}
	}
}

func TestAllTenorsOrderIsShortestFirst(t *testing.T) {
	prev := 0
	for i, tn := range AllTenors {
		if int(tn) != i {
			t.Errorf("position %d: expected tenor index %d, got %d", i, i, int(tn))
		}
		if tn.PeriodDays() <= prev {
			t.Errorf("periods must strictly increase, got %d after %d", tn.PeriodDays(), prev)
		}
		prev = tn.PeriodDays()
	}
}
