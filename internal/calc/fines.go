package calc

import (
	"strings"
	"time"
)

const (
	// LateReturnFactor is the share of the daily rate charged per late day.
	LateReturnFactor = 0.5
	// FuelFineAmount is the flat charge for returning with an incomplete tank.
	FuelFineAmount = 100.00
	// MileageRate is the charge per unit over the predicted mileage.
	MileageRate = 0.50
)

// LateReturnFine charges half a daily rate per day past the expected return
// date. Missing reference dates produce no charge.
func LateReturnFine(expected, actual time.Time, dailyRate float64) (float64, int) {
	if expected.IsZero() || actual.IsZero() {
		return 0, 0
	}
	daysLate := DaysBetween(expected, actual)
	if daysLate <= 0 {
		return 0, 0
	}
	return float64(daysLate) * dailyRate * LateReturnFactor, daysLate
}

// ProgressiveLateReturnFine is the tiered alternative to LateReturnFine:
// up to 3 days late charges 50% of the daily rate per day, up to 7 days
// 100%, beyond that 150%. No current endpoint uses it.
func ProgressiveLateReturnFine(expected, actual time.Time, dailyRate float64) (float64, int) {
	if expected.IsZero() || actual.IsZero() {
		return 0, 0
	}
	daysLate := DaysBetween(expected, actual)
	if daysLate <= 0 {
		return 0, 0
	}
	multiplier := 1.5
	switch {
	case daysLate <= 3:
		multiplier = 0.5
	case daysLate <= 7:
		multiplier = 1.0
	}
	return float64(daysLate) * dailyRate * multiplier, daysLate
}

// FuelFine charges a flat amount when the tank was not returned full.
func FuelFine(fuelComplete bool) float64 {
	if !fuelComplete {
		return FuelFineAmount
	}
	return 0
}

// DamageFine passes the reported damage cost through as the fine amount,
// coerced to a non-negative number.
func DamageFine(reportedCost any) float64 {
	return CoerceAmount(reportedCost)
}

// MileageFine charges per unit driven over the mileage predicted at
// checkout. Rentals without a predicted mileage produce no charge.
func MileageFine(predicted *float64, odometer float64) (float64, float64) {
	if predicted == nil {
		return 0, 0
	}
	excess := odometer - *predicted
	if excess <= 0 {
		return 0, 0
	}
	return excess * MileageRate, excess
}

var damageKeywords = []string{
	"COLLISION", "COLLIDED", "CRASH", "WRECK", "DENT", "BROKEN",
	"DAMAGED", "SCRATCH", "SMASHED",
}

// ConditionIndicatesDamage classifies a free-text condition report. It is a
// provisional keyword heuristic; a structured condition-code enum should
// replace it.
func ConditionIndicatesDamage(condition string) bool {
	report := strings.ToUpper(condition)
	for _, kw := range damageKeywords {
		if strings.Contains(report, kw) {
			return true
		}
	}
	return false
}
