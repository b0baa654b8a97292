package main

// Compute builds the full dashboard for one set of assumptions. It is a pure
// function of its inputs and is re-run from scratch on every input change.
func Compute(a Assumptions, config *Config) Dashboard {
	if config == nil {
		config, _ = LoadDefaultConfig()
	}
	a = a.Normalize()
	m := DeriveMetrics(a)

	return Dashboard{
		Title:       config.Title,
		Assumptions: a,
		Metrics:     m,
		Tiles:       BuildTiles(m, config.CurrencySymbol),
		Years:       ProjectionYears(config.Scenarios.HorizonYears),
		Scenarios:   ProjectAll(a, m, config.Scenarios),
		Advisories:  Advise(a, m, config.Advisory),
	}
}

// BuildTiles formats the five metric tiles in display order
func BuildTiles(m Metrics, currency string) []Tile {
	return []Tile{
		{Key: "first_year_investment", Icon: "📈", Label: "First-Year Investment",
			Value: FormatMoneyFull(m.FirstYearInvestment, currency), Raw: m.FirstYearInvestment, Valid: true},
		{Key: "first_year_revenue", Icon: "💰", Label: "First-Year Revenue",
			Value: FormatMoneyFull(m.FirstYearRevenue, currency), Raw: m.FirstYearRevenue, Valid: true},
		{Key: "ltv_per_school", Icon: "📋", Label: "Lifetime Value (LTV) per School",
			Value: FormatMoneyFull(m.LTVPerSchool, currency), Raw: m.LTVPerSchool, Valid: true},
		{Key: "breakeven_schools", Icon: "📊", Label: "Breakeven Number of Schools",
			Value: m.BreakevenSchools.Format(1), Raw: m.BreakevenSchools.Value, Valid: m.BreakevenSchools.Defined},
		{Key: "ltv_cac_ratio", Icon: "📉", Label: "LTV/CAC Ratio",
			Value: m.LTVCACRatio.Format(2), Raw: m.LTVCACRatio.Value, Valid: m.LTVCACRatio.Defined},
	}
}
