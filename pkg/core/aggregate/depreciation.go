package aggregate

// DepreciationSchedule is the straight-line write-down of capitalized spend.
type DepreciationSchedule struct {
	Monthly float64
	Total   float64
}

// Depreciate spreads total capitalized expenditure straight-line over
// usefulLifeMonths, accruing one charge per month of the reporting period.
// The cumulative charge is capped at the asset cost so periods longer than
// the useful life cannot depreciate below zero book value. A single useful
// life regardless of asset type is a deliberate policy simplification;
// asset-specific lives belong in the caller's configuration, not here.
func Depreciate(totalCapEx float64, monthsInPeriod, usefulLifeMonths int) DepreciationSchedule {
	if totalCapEx == 0 || usefulLifeMonths <= 0 {
		return DepreciationSchedule{}
	}
	monthly := totalCapEx / float64(usefulLifeMonths)
	total := monthly * float64(monthsInPeriod)
	if total > totalCapEx {
		total = totalCapEx
	}
	return DepreciationSchedule{Monthly: monthly, Total: total}
}
