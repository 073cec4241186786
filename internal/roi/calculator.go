// Package roi estimates the three-year return of an AI project from a handful
// of business metrics.
package roi

import "math"

const (
	baseCost          = 50000.0
	costPerEmployee   = 500.0
	weeksPerYear      = 52.0
	paybackSentinel   = 999
	yearOneRealized   = 0.7
	yearTwoRealized   = 1.0
	yearThreeRealized = 1.1
)

// Calculate produces the projection for in. It is total: negative or
// non-finite inputs count as zero and no output is ever NaN or infinite.
// Every figure is computed in float64 and rounded once at the end.
func Calculate(in Inputs) Results {
	m := MultiplierFor(in.UseCase)

	employees := clamp(in.EmployeeCount)
	hourlyRate := clamp(in.AvgHourlyRate)
	hours := clamp(in.InefficiencyHours)

	totalCost := (baseCost + employees*costPerEmployee) * m.Cost

	annualLaborSavings := employees * hours * weeksPerYear * hourlyRate
	actualSavings := annualLaborSavings * m.Efficiency / 100
	steadyState := actualSavings * m.Savings

	yearOne := steadyState * yearOneRealized
	yearTwo := steadyState * yearTwoRealized
	yearThree := steadyState * yearThreeRealized
	total := yearOne + yearTwo + yearThree
	net := total - totalCost

	var roiPct float64
	if totalCost > 0 {
		roiPct = net / totalCost * 100
	}

	payback := int64(paybackSentinel)
	if yearOne > 0 {
		// Paybacks beyond the sentinel are reported as the sentinel.
		if months := math.Ceil(totalCost / (yearOne / 12)); months < paybackSentinel {
			payback = int64(months)
		}
	}

	hoursSaved := employees * hours * weeksPerYear * m.Efficiency / 100

	return Results{
		TotalCost:             round(totalCost),
		YearOneSavings:        round(yearOne),
		YearTwoSavings:        round(yearTwo),
		YearThreeSavings:      round(yearThree),
		TotalThreeYearSavings: round(total),
		NetROI:                round(net),
		ROIPercentage:         round(roiPct),
		PaybackMonths:         payback,
		EfficiencyGainPercent: round(m.Efficiency),
		HoursSaved:            round(hoursSaved),
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// round saturates at the int64 range instead of wrapping.
func round(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Round(v))
}
