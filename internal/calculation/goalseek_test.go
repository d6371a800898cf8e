package calculation

import (
	"context"
	"testing"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredMonthlyContribution(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment: dec("5000"),
		Years:             10,
		AnnualReturn:      dec("0.06"),
	}
	target := dec("100000")

	result, err := engine.RequiredMonthlyContribution(context.Background(), plan, target)
	require.NoError(t, err)

	assert.True(t, result.AchievedValue.GreaterThanOrEqual(target),
		"achieved %s must clear the target", result.AchievedValue)

	// One cent less must fall short, otherwise the result is not
	// minimal.
	lower := plan
	lower.MonthlyContribution = result.MonthlyContribution.Sub(dec("0.01"))
	proj, err := engine.Project(lower)
	require.NoError(t, err)
	assert.True(t, proj.FinalRow().TotalValue.LessThan(target),
		"a contribution one cent lower must miss the target")
}

func TestRequiredMonthlyContribution_AlreadyReached(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment: dec("10000"),
		Years:             10,
		AnnualReturn:      dec("0.07"),
	}

	result, err := engine.RequiredMonthlyContribution(context.Background(), plan, dec("10000"))
	require.NoError(t, err)
	assert.True(t, result.MonthlyContribution.IsZero(),
		"no extra contribution needed, got %s", result.MonthlyContribution)
}

func TestRequiredMonthlyContribution_Unreachable(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{Years: 1}
	_, err := engine.RequiredMonthlyContribution(context.Background(), plan, decimal.NewFromInt(100_000_000))
	assert.Error(t, err, "targets above the contribution ceiling are unreachable")
}

func TestRequiredMonthlyContribution_RejectsNonPositiveTarget(t *testing.T) {
	engine := NewEngine()

	_, err := engine.RequiredMonthlyContribution(context.Background(), domain.Plan{Years: 5}, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestRequiredMonthlyContribution_Cancellation(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := domain.Plan{Years: 30, AnnualReturn: dec("0.05")}
	_, err := engine.RequiredMonthlyContribution(ctx, plan, dec("500000"))
	assert.ErrorIs(t, err, context.Canceled)
}
