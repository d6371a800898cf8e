package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUndefinedMetric is wrapped by metric computations whose
// denominator (or base) is zero. Callers render these as "N/A";
// the value is never NaN.
var ErrUndefinedMetric = errors.New("undefined metric")

var hundred = decimal.NewFromInt(100)

// ROI returns cumulative gain as a percentage of cumulative
// contributions, rounded to two decimals.
func ROI(gain, contributions decimal.Decimal) (decimal.Decimal, error) {
	if contributions.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: ROI requires positive total contributions", ErrUndefinedMetric)
	}
	return gain.Div(contributions).Mul(hundred).Round(2), nil
}

// CAGR returns the compound annual growth rate, in percent, from the
// initial investment to the final value over the horizon. The metric
// is only meaningful for a positive initial investment; a zero base
// reports an undefined metric rather than propagating infinity.
//
// The fractional exponent is evaluated in float64, which keeps the
// result well inside 1e-9 relative error for the supported ranges.
func CAGR(initial, final decimal.Decimal, years int) (decimal.Decimal, error) {
	if years <= 0 {
		return decimal.Zero, fmt.Errorf("%w: CAGR requires a positive horizon, got %d years", ErrUndefinedMetric, years)
	}
	if initial.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: CAGR requires a positive initial investment", ErrUndefinedMetric)
	}
	ratio := final.Div(initial).InexactFloat64()
	if ratio < 0 {
		return decimal.Zero, fmt.Errorf("%w: CAGR is undefined for a negative final value", ErrUndefinedMetric)
	}
	cagr := (math.Pow(ratio, 1/float64(years)) - 1) * 100
	return decimal.NewFromFloat(cagr), nil
}

// Summarize derives the headline metrics from a projection's final
// row. Undefined ROI and CAGR come back as nil pointers.
func Summarize(proj *domain.Projection) domain.Summary {
	final := proj.FinalRow()
	s := domain.Summary{
		YearsInvested:      proj.Plan.Years,
		InitialInvestment:  proj.Plan.InitialInvestment.Round(2),
		FinalValue:         final.TotalValue,
		TotalContributions: final.TotalContributions,
		InvestmentGain:     final.InvestmentGain,
	}

	if roi, err := ROI(final.InvestmentGain, final.TotalContributions); err == nil {
		s.ROIPercent = &roi
	}
	if cagr, err := CAGR(proj.Plan.InitialInvestment, final.TotalValue, proj.Plan.Years); err == nil {
		s.CAGRPercent = &cagr
	}

	// Composition of the final value; the two percentages sum to 100
	// by construction. Both stay zero when the final value is zero.
	if final.TotalValue.GreaterThan(decimal.Zero) {
		s.ContributionPercent = final.TotalContributions.Div(final.TotalValue).Mul(hundred).Round(2)
		s.GainPercent = final.InvestmentGain.Div(final.TotalValue).Mul(hundred).Round(2)
	}
	return s
}

// AnnualBreakdown converts the cumulative yearly series into per-year
// contribution and gain amounts (first differences). Year 1's
// contribution is the initial investment plus twelve base
// contributions, deliberately excluding compounding growth from the
// contribution bucket.
func AnnualBreakdown(plan domain.Plan, yearly []domain.ProjectionRow) []domain.AnnualBreakdownRow {
	rows := make([]domain.AnnualBreakdownRow, 0, len(yearly))
	for i, y := range yearly {
		var row domain.AnnualBreakdownRow
		row.Year = y.Year
		if i == 0 {
			row.Contribution = plan.InitialInvestment.Add(plan.MonthlyContribution.Mul(twelve)).Round(2)
			row.Gain = y.InvestmentGain
		} else {
			row.Contribution = y.TotalContributions.Sub(yearly[i-1].TotalContributions)
			row.Gain = y.InvestmentGain.Sub(yearly[i-1].InvestmentGain)
		}
		rows = append(rows, row)
	}
	return rows
}
