package calculation

import (
	"context"
	"fmt"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalSeekResult reports the smallest monthly contribution whose
// projection reaches the target final value, holding every other plan
// parameter fixed.
type GoalSeekResult struct {
	TargetValue         decimal.Decimal `json:"targetValue"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	AchievedValue       decimal.Decimal `json:"achievedValue"`
	Iterations          int             `json:"iterations"`
}

const (
	goalSeekMaxIterations = 200
	goalSeekCeiling       = 1_000_000 // matches the UI's contribution bound
)

// RequiredMonthlyContribution bisects on the monthly contribution
// until the projected final value brackets the target to within half
// a cent. The final value is monotonic in the contribution for
// non-negative rates, which the config layer guarantees.
func (e *Engine) RequiredMonthlyContribution(ctx context.Context, plan domain.Plan, target decimal.Decimal) (*GoalSeekResult, error) {
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target value must be positive", ErrInvalidPlan)
	}

	finalValue := func(contribution decimal.Decimal) (decimal.Decimal, error) {
		p := plan
		p.MonthlyContribution = contribution
		proj, err := e.Project(p)
		if err != nil {
			return decimal.Zero, err
		}
		return proj.FinalRow().TotalValue, nil
	}

	lo := decimal.Zero
	hi := decimal.NewFromInt(goalSeekCeiling)

	withNone, err := finalValue(lo)
	if err != nil {
		return nil, err
	}
	if withNone.GreaterThanOrEqual(target) {
		return &GoalSeekResult{TargetValue: target, MonthlyContribution: decimal.Zero, AchievedValue: withNone}, nil
	}
	withMax, err := finalValue(hi)
	if err != nil {
		return nil, err
	}
	if withMax.LessThan(target) {
		return nil, fmt.Errorf("target %s is not reachable with a monthly contribution up to %s",
			target.StringFixed(2), hi.StringFixed(2))
	}

	tolerance := decimal.NewFromFloat(0.005)
	iterations := 0
	for iterations < goalSeekMaxIterations && hi.Sub(lo).GreaterThan(tolerance) {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		value, err := finalValue(mid)
		if err != nil {
			return nil, err
		}
		if value.GreaterThanOrEqual(target) {
			hi = mid
		} else {
			lo = mid
		}
	}

	// Round up to the cent so the result still clears the target.
	required := hi.RoundUp(2)
	achieved, err := finalValue(required)
	if err != nil {
		return nil, err
	}

	if e.Debug {
		e.Logger.Debugf("goal seek: target=%s contribution=%s achieved=%s iterations=%d",
			target.StringFixed(2), required.StringFixed(2), achieved.StringFixed(2), iterations)
	}

	return &GoalSeekResult{
		TargetValue:         target,
		MonthlyContribution: required,
		AchievedValue:       achieved,
		Iterations:          iterations,
	}, nil
}
