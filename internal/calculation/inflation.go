package calculation

import (
	"math"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustForInflation deflates a projection's cumulative monetary
// series into today's money by dividing each row by (1+rate)^t, with
// t in years (months/12 for the monthly table).
//
// This is an explicit opt-in transformation. The tool this calculator
// descends from computed a "real" rate from its inflation input and
// then never applied it to any output; that dead computation is not
// reproduced here. ContributionApplied stays nominal — it is the cash
// amount actually paid that month.
func AdjustForInflation(proj *domain.Projection, rate decimal.Decimal) *domain.Projection {
	if rate.IsZero() {
		return proj
	}

	base := one.Add(rate)
	out := &domain.Projection{
		Plan:    proj.Plan,
		Yearly:  make([]domain.ProjectionRow, len(proj.Yearly)),
		Monthly: make([]domain.MonthlyRow, len(proj.Monthly)),
	}

	for i, row := range proj.Yearly {
		deflator := base.Pow(decimal.NewFromInt(int64(row.Year)))
		row.TotalContributions = row.TotalContributions.Div(deflator).Round(2)
		row.InvestmentGain = row.InvestmentGain.Div(deflator).Round(2)
		row.TotalValue = row.TotalValue.Div(deflator).Round(2)
		out.Yearly[i] = row
	}

	baseF := base.InexactFloat64()
	for i, row := range proj.Monthly {
		deflator := decimal.NewFromFloat(math.Pow(baseF, float64(row.Month)/12))
		row.TotalContributions = row.TotalContributions.Div(deflator).Round(2)
		row.InvestmentGain = row.InvestmentGain.Div(deflator).Round(2)
		row.TotalValue = row.TotalValue.Div(deflator).Round(2)
		out.Monthly[i] = row
	}
	return out
}
