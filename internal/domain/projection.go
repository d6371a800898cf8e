package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow is a year-end snapshot of the cumulative series.
// Monetary fields are rounded to cents at emission; ROIPercent is nil
// when cumulative contributions are zero (the metric is undefined,
// not zero).
type ProjectionRow struct {
	Year               int              `json:"year"`
	TotalContributions decimal.Decimal  `json:"totalContributions"`
	InvestmentGain     decimal.Decimal  `json:"investmentGain"`
	TotalValue         decimal.Decimal  `json:"totalValue"`
	ROIPercent         *decimal.Decimal `json:"roiPercent,omitempty"`
}

// MonthlyRow is a snapshot after one monthly compounding step.
// Calendar fields are labels derived from the plan anchor.
type MonthlyRow struct {
	Month               int             `json:"month"` // 1..years*12
	Year                int             `json:"year"`  // plan year 1..years
	CalendarYear        int             `json:"calendarYear"`
	CalendarMonth       int             `json:"calendarMonth"` // 1..12
	MonthName           string          `json:"monthName"`
	ContributionApplied decimal.Decimal `json:"contributionApplied"`
	TotalContributions  decimal.Decimal `json:"totalContributions"`
	InvestmentGain      decimal.Decimal `json:"investmentGain"`
	TotalValue          decimal.Decimal `json:"totalValue"`
}

// Projection is the complete output of one engine pass. It is a pure
// value owned by the caller; every parameter change produces a fresh
// one.
type Projection struct {
	Plan    Plan            `json:"plan"`
	Yearly  []ProjectionRow `json:"yearly"`
	Monthly []MonthlyRow    `json:"monthly"`
}

// FinalRow returns the last yearly row. It panics only on an empty
// projection, which the engine never produces for a valid plan.
func (p *Projection) FinalRow() ProjectionRow {
	return p.Yearly[len(p.Yearly)-1]
}

// Summary holds the derived metrics the presentation layer displays.
// CAGRPercent is nil when the initial investment is zero and
// ROIPercent is nil when total contributions are zero; both render as
// "N/A" rather than propagating NaN into a chart.
type Summary struct {
	YearsInvested       int              `json:"yearsInvested"`
	InitialInvestment   decimal.Decimal  `json:"initialInvestment"`
	FinalValue          decimal.Decimal  `json:"finalValue"`
	TotalContributions  decimal.Decimal  `json:"totalContributions"`
	InvestmentGain      decimal.Decimal  `json:"investmentGain"`
	ROIPercent          *decimal.Decimal `json:"roiPercent,omitempty"`
	CAGRPercent         *decimal.Decimal `json:"cagrPercent,omitempty"`
	ContributionPercent decimal.Decimal  `json:"contributionPercent"`
	GainPercent         decimal.Decimal  `json:"gainPercent"`
}

// AnnualBreakdownRow is the first difference of the cumulative series:
// how much of a single year's change came from contributions vs
// growth. Year 1's Contribution is defined as the initial investment
// plus twelve base contributions, so compounding growth never leaks
// into the contribution bucket.
type AnnualBreakdownRow struct {
	Year         int             `json:"year"`
	Contribution decimal.Decimal `json:"contribution"`
	Gain         decimal.Decimal `json:"gain"`
}
