package queries

// Pure metric computations shared by the fleet metrics handler and its tests.
// All rates guard their denominators: an empty fleet or roster reports 0, never
// a division error.

// ROI returns the return on investment for a single vehicle as a percentage:
// completed-trip revenue minus all expenses, over what the vehicle cost. A
// vehicle acquired for free reports 0 rather than an infinite return.
func ROI(completedRevenue, totalExpenses, acquisitionCost float64) float64 {
	if acquisitionCost == 0 {
		return 0
	}
	return (completedRevenue - totalExpenses) / acquisitionCost * 100
}

// UtilizationRate returns the share of the active fleet currently on a trip as
// a percentage. Retired vehicles are not part of the active fleet and count in
// neither numerator nor denominator.
func UtilizationRate(onTrip, active int) float64 {
	if active == 0 {
		return 0
	}
	return float64(onTrip) / float64(active) * 100
}

// ComplianceRate returns the share of drivers whose licenses remain valid
// beyond the renewal window, as a percentage of the whole roster. An empty
// roster reports 0.
func ComplianceRate(compliant, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(compliant) / float64(total) * 100
}

// NetProfit returns fleet-wide revenue minus fleet-wide expenses.
func NetProfit(totalRevenue, totalExpenses float64) float64 {
	return totalRevenue - totalExpenses
}
