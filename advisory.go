package main

// Advisory messages shown under Strategic Insights
const (
	msgHealthyUnitEconomics = "Healthy Unit Economics: LTV/CAC is strong."
	msgWeakUnitEconomics    = "Warning: LTV/CAC ratio below ideal standards."
	msgPilotSufficient      = "Pilot size sufficient to reach break-even."
	msgNeedToScale          = "Need to scale post-pilot to break even."
)

// Advise returns the two strategic insights for a set of metrics.
//
// Unit economics are healthy only when LTV/CAC is strictly above the threshold; an
// undefined ratio (zero CAC) takes the warning path. The pilot reaches break-even when
// pilot schools >= breakeven schools; an undefined breakeven (zero LTV) never does.
func Advise(a Assumptions, m Metrics, cfg AdvisoryConfig) []Advisory {
	threshold := cfg.HealthyLTVCAC
	if threshold <= 0 {
		threshold = 3
	}

	unit := Advisory{Topic: "unit_economics", Severity: SeverityWarning, Message: msgWeakUnitEconomics}
	if m.LTVCACRatio.Defined && m.LTVCACRatio.Value > threshold {
		unit = Advisory{Topic: "unit_economics", Severity: SeveritySuccess, Message: msgHealthyUnitEconomics}
	}

	pilot := Advisory{Topic: "pilot_breakeven", Severity: SeverityInfo, Message: msgNeedToScale}
	if m.BreakevenSchools.Defined && float64(a.PilotSchools) >= m.BreakevenSchools.Value {
		pilot = Advisory{Topic: "pilot_breakeven", Severity: SeveritySuccess, Message: msgPilotSufficient}
	}

	return []Advisory{unit, pilot}
}
