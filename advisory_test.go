package main

import "testing"

func TestAdvise_UnitEconomicsThreshold(t *testing.T) {
	tests := []struct {
		cac         float64
		expected    Severity
		message     string
		description string
	}{
		{20000, SeverityWarning, msgWeakUnitEconomics, "ratio exactly 3.0 is not healthy"},
		{19999, SeveritySuccess, msgHealthyUnitEconomics, "ratio just above 3.0"},
		{10000, SeveritySuccess, msgHealthyUnitEconomics, "ratio 6.0"},
		{40000, SeverityWarning, msgWeakUnitEconomics, "ratio 1.5"},
		{0, SeverityWarning, msgWeakUnitEconomics, "undefined ratio (zero CAC)"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			a := defaultAssumptions(t)
			a.CACPerSchool = tc.cac
			adv := Advise(a, DeriveMetrics(a), AdvisoryConfig{HealthyLTVCAC: 3})

			if len(adv) != 2 {
				t.Fatalf("Expected 2 advisories, got %d", len(adv))
			}
			if adv[0].Topic != "unit_economics" {
				t.Errorf("First advisory should be unit economics, got %q", adv[0].Topic)
			}
			if adv[0].Severity != tc.expected || adv[0].Message != tc.message {
				t.Errorf("Expected %s %q, got %s %q", tc.expected, tc.message, adv[0].Severity, adv[0].Message)
			}
		})
	}
}

func TestAdvise_PilotBreakeven(t *testing.T) {
	tests := []struct {
		pilot       int
		price       float64
		expected    Severity
		message     string
		description string
	}{
		{30, 30000, SeverityInfo, msgNeedToScale, "30 pilots against 83.3 breakeven"},
		{84, 30000, SeveritySuccess, msgPilotSufficient, "84 pilots against 83.3 breakeven"},
		{30, 0, SeverityInfo, msgNeedToScale, "undefined breakeven (zero price)"},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			a := defaultAssumptions(t)
			a.PilotSchools = tc.pilot
			a.PricePerSchool = tc.price
			adv := Advise(a, DeriveMetrics(a), AdvisoryConfig{HealthyLTVCAC: 3})

			if adv[1].Topic != "pilot_breakeven" {
				t.Errorf("Second advisory should be pilot break-even, got %q", adv[1].Topic)
			}
			if adv[1].Severity != tc.expected || adv[1].Message != tc.message {
				t.Errorf("Expected %s %q, got %s %q", tc.expected, tc.message, adv[1].Severity, adv[1].Message)
			}
		})
	}
}

func TestAdvise_PilotEqualsBreakeven(t *testing.T) {
	// Investment 600,000 / LTV 60,000 = exactly 10 schools
	a := defaultAssumptions(t)
	a.LocalizationCost = 0
	a.CloudCost = 100000
	a.SalesTeamCost = 500000
	a.PilotSchools = 10

	adv := Advise(a, DeriveMetrics(a), AdvisoryConfig{HealthyLTVCAC: 3})
	if adv[1].Severity != SeveritySuccess {
		t.Errorf("Pilot equal to breakeven should be sufficient, got %q", adv[1].Message)
	}
}

func TestAdvise_DefaultThreshold(t *testing.T) {
	a := defaultAssumptions(t)
	a.CACPerSchool = 15000 // ratio 4.0

	adv := Advise(a, DeriveMetrics(a), AdvisoryConfig{})
	if adv[0].Severity != SeveritySuccess {
		t.Errorf("Zero threshold should fall back to 3, got %q", adv[0].Message)
	}

	adv = Advise(a, DeriveMetrics(a), AdvisoryConfig{HealthyLTVCAC: 5})
	if adv[0].Severity != SeverityWarning {
		t.Errorf("Ratio 4.0 should warn against a threshold of 5, got %q", adv[0].Message)
	}
}
