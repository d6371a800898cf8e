package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidPlan is wrapped by every input rejection from the engine.
var ErrInvalidPlan = errors.New("invalid plan")

// Logger is the minimal logging surface the engine needs. The CLI
// injects a zap-backed implementation; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine computes investment projections. It holds no mutable state
// between calls, so a single Engine is safe for concurrent use.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the
// no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Project runs the monthly-compounding recurrence over the full
// horizon and returns the yearly and monthly series.
//
// Each month applies growth before that month's contribution:
//
//	value = value*(1 + annualReturn/12) + contribution
//
// Lump sums for a year post once at year end, after the twelve monthly
// steps; lump sums with a year outside [1, Years] are ignored. The
// contribution base grows by AnnualIncreaseRate at each year end.
//
// Accumulation runs at full decimal precision; values are rounded to
// cents only when copied into an emitted row. Rates are accepted
// unchecked (including negative growth) — bounding them is the
// caller's job, and the engine makes no monotonicity assumptions.
func (e *Engine) Project(plan domain.Plan) (*domain.Projection, error) {
	if plan.Years < 1 {
		return nil, fmt.Errorf("%w: years must be at least 1, got %d", ErrInvalidPlan, plan.Years)
	}

	monthlyRate := plan.AnnualReturn.Div(twelve)
	growth := one.Add(monthlyRate)
	increase := one.Add(plan.AnnualIncreaseRate)
	anchor := plan.EffectiveAnchor()

	totalValue := plan.InitialInvestment
	totalContributions := plan.InitialInvestment
	contrib := plan.MonthlyContribution

	yearly := make([]domain.ProjectionRow, 0, plan.Years)
	monthly := make([]domain.MonthlyRow, 0, plan.Months())

	monthIndex := 0
	for year := 1; year <= plan.Years; year++ {
		for m := 1; m <= 12; m++ {
			totalValue = totalValue.Mul(growth).Add(contrib)
			totalContributions = totalContributions.Add(contrib)
			monthIndex++

			// Calendar labels offset from the anchor; month wraps
			// 1-12 and carries the year.
			abs := anchor.StartMonth - 1 + monthIndex - 1
			calMonth := abs%12 + 1
			monthly = append(monthly, domain.MonthlyRow{
				Month:               monthIndex,
				Year:                year,
				CalendarYear:        anchor.StartYear + abs/12,
				CalendarMonth:       calMonth,
				MonthName:           time.Month(calMonth).String(),
				ContributionApplied: contrib.Round(2),
				TotalContributions:  totalContributions.Round(2),
				InvestmentGain:      totalValue.Sub(totalContributions).Round(2),
				TotalValue:          totalValue.Round(2),
			})
		}

		for _, ls := range plan.LumpSums {
			if ls.Year == year {
				totalValue = totalValue.Add(ls.Amount)
				totalContributions = totalContributions.Add(ls.Amount)
			}
		}

		contrib = contrib.Mul(increase)

		row := domain.ProjectionRow{
			Year:               year,
			TotalContributions: totalContributions.Round(2),
			InvestmentGain:     totalValue.Sub(totalContributions).Round(2),
			TotalValue:         totalValue.Round(2),
		}
		if roi, err := ROI(row.InvestmentGain, row.TotalContributions); err == nil {
			row.ROIPercent = &roi
		}
		yearly = append(yearly, row)

		if e.Debug {
			e.Logger.Debugf("year %d: contributions=%s gain=%s value=%s",
				year, row.TotalContributions.StringFixed(2),
				row.InvestmentGain.StringFixed(2), row.TotalValue.StringFixed(2))
		}
	}

	return &domain.Projection{Plan: plan, Yearly: yearly, Monthly: monthly}, nil
}
