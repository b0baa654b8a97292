package main

import "fmt"

// BreakevenPriceResult is the goal-seek result for one growth scenario
type BreakevenPriceResult struct {
	GrowthRate float64            `json:"growth_rate"`
	Label      string             `json:"label"`
	TargetYear int                `json:"target_year"`
	Price      Ratio              `json:"price"`      // Lowest price per school with cumulative profit >= 0 at TargetYear
	Projection ScenarioProjection `json:"projection"` // Projection re-run at Price (empty when Price is undefined)
}

// CalculateBreakevenPrice finds the price per school at which the scenario's
// cumulative profit is exactly zero in targetYear.
//
// Cost does not depend on price and revenue is proportional to it, so profit is
// linear in price: profit(p) = p × unitRevenue - cost. The price is undefined when
// no schools renew (zero unit revenue).
func CalculateBreakevenPrice(a Assumptions, config *Config, rate float64, targetYear int) BreakevenPriceResult {
	sc := config.Scenarios
	if targetYear < 0 {
		targetYear = 0
	}
	if targetYear > sc.HorizonYears {
		targetYear = sc.HorizonYears
	}

	unit := a
	unit.PricePerSchool = 1
	m := DeriveMetrics(unit)
	at := ProjectScenario(unit, m, rate, targetYear, sc.CapacitySchools).Years[targetYear]

	result := BreakevenPriceResult{
		GrowthRate: rate,
		Label:      ScenarioLabel(rate),
		TargetYear: targetYear,
		Price:      NewRatio(at.Cost, at.CumulativeRevenue),
	}
	if !result.Price.Defined {
		return result
	}

	seeked := a
	seeked.PricePerSchool = result.Price.Value
	result.Projection = ProjectScenario(seeked, DeriveMetrics(seeked), rate, sc.HorizonYears, sc.CapacitySchools)
	return result
}

// validateTargetYear checks a requested goal-seek year against the projection horizon
func validateTargetYear(year int, config *Config) error {
	if year < 0 || year > config.Scenarios.HorizonYears {
		return fmt.Errorf("year must be between 0 and %d", config.Scenarios.HorizonYears)
	}
	return nil
}

// RunBreakevenPriceCalculations goal-seeks the break-even price for every configured growth rate
func RunBreakevenPriceCalculations(a Assumptions, config *Config, targetYear int) []BreakevenPriceResult {
	a = a.Normalize()
	results := make([]BreakevenPriceResult, 0, len(config.Scenarios.GrowthRates))
	for _, rate := range config.Scenarios.GrowthRates {
		results = append(results, CalculateBreakevenPrice(a, config, rate, targetYear))
	}
	return results
}

// FindLowestBreakevenPrice returns the index of the scenario needing the lowest price, or -1
func FindLowestBreakevenPrice(results []BreakevenPriceResult) int {
	best := -1
	for i, r := range results {
		if !r.Price.Defined {
			continue
		}
		if best < 0 || r.Price.Value < results[best].Price.Value {
			best = i
		}
	}
	return best
}
