package calculation

import (
	"math"
	"testing"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROI(t *testing.T) {
	roi, err := ROI(dec("250"), dec("1000"))
	require.NoError(t, err)
	assert.True(t, roi.Equal(dec("25")), "got %s", roi)
}

func TestROI_UndefinedForZeroContributions(t *testing.T) {
	_, err := ROI(dec("100"), decimal.Zero)
	assert.ErrorIs(t, err, ErrUndefinedMetric)
}

func TestCAGR_MatchesClosedForm(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment: dec("100"),
		Years:             5,
		AnnualReturn:      dec("0.08"),
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	final := proj.FinalRow().TotalValue
	cagr, err := CAGR(plan.InitialInvestment, final, plan.Years)
	require.NoError(t, err)

	expected := (math.Pow(final.InexactFloat64()/100, 1.0/5) - 1) * 100
	assert.InEpsilon(t, expected, cagr.InexactFloat64(), 1e-9,
		"CAGR must match ((final/initial)^(1/years)-1)*100")
}

func TestCAGR_UndefinedForZeroInitial(t *testing.T) {
	_, err := CAGR(decimal.Zero, dec("5000"), 5)
	assert.ErrorIs(t, err, ErrUndefinedMetric)
}

func TestCAGR_UndefinedForZeroYears(t *testing.T) {
	_, err := CAGR(dec("100"), dec("200"), 0)
	assert.ErrorIs(t, err, ErrUndefinedMetric)
}

func TestSummarize(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		InitialInvestment:   dec("1000"),
		MonthlyContribution: dec("100"),
		Years:               10,
		AnnualReturn:        dec("0.07"),
	})
	require.NoError(t, err)

	s := Summarize(proj)
	assert.Equal(t, 10, s.YearsInvested)
	assert.NotNil(t, s.ROIPercent)
	assert.NotNil(t, s.CAGRPercent)
	assert.True(t, s.FinalValue.Equal(proj.FinalRow().TotalValue))
	assert.True(t, s.InvestmentGain.Equal(s.FinalValue.Sub(s.TotalContributions)))
}

// Contribution and gain percentages sum to 100 within rounding
// tolerance for a spread of plans.
func TestSummarize_CompositionIdentity(t *testing.T) {
	engine := NewEngine()

	plans := []domain.Plan{
		{InitialInvestment: dec("1000"), MonthlyContribution: dec("100"), Years: 10, AnnualReturn: dec("0.07")},
		{MonthlyContribution: dec("50"), Years: 1},
		{InitialInvestment: dec("500"), Years: 30, AnnualReturn: dec("0.12"),
			LumpSums: []domain.LumpSum{{Year: 15, Amount: dec("2000")}}},
	}
	tolerance := dec("0.01")
	for _, plan := range plans {
		proj, err := engine.Project(plan)
		require.NoError(t, err)

		s := Summarize(proj)
		sum := s.ContributionPercent.Add(s.GainPercent)
		assert.True(t, sum.Sub(dec("100")).Abs().LessThanOrEqual(tolerance),
			"composition sums to 100, got %s", sum)
	}
}

func TestSummarize_UndefinedMetricsComeBackNil(t *testing.T) {
	engine := NewEngine()

	// Zero initial investment: CAGR undefined, ROI still defined.
	proj, err := engine.Project(domain.Plan{MonthlyContribution: dec("100"), Years: 2, AnnualReturn: dec("0.05")})
	require.NoError(t, err)
	s := Summarize(proj)
	assert.Nil(t, s.CAGRPercent, "CAGR needs a positive initial investment")
	assert.NotNil(t, s.ROIPercent)

	// Nothing invested at all: both undefined, nothing NaN.
	proj, err = engine.Project(domain.Plan{Years: 1})
	require.NoError(t, err)
	s = Summarize(proj)
	assert.Nil(t, s.CAGRPercent)
	assert.Nil(t, s.ROIPercent)
	assert.True(t, s.ContributionPercent.IsZero())
	assert.True(t, s.GainPercent.IsZero())
}

func TestAnnualBreakdown(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment:   dec("1000"),
		MonthlyContribution: dec("100"),
		Years:               3,
		AnnualReturn:        dec("0.06"),
		AnnualIncreaseRate:  dec("0.10"),
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	rows := AnnualBreakdown(plan, proj.Yearly)
	require.Len(t, rows, 3)

	// Year 1 contribution is pinned to initial + 12 base
	// contributions so growth never leaks into the bucket.
	assert.True(t, rows[0].Contribution.Equal(dec("2200")), "got %s", rows[0].Contribution)

	// Later rows are first differences of the cumulative series.
	for i := 1; i < len(rows); i++ {
		wantContribution := proj.Yearly[i].TotalContributions.Sub(proj.Yearly[i-1].TotalContributions)
		wantGain := proj.Yearly[i].InvestmentGain.Sub(proj.Yearly[i-1].InvestmentGain)
		assert.True(t, rows[i].Contribution.Equal(wantContribution), "year %d contribution", i+1)
		assert.True(t, rows[i].Gain.Equal(wantGain), "year %d gain", i+1)
	}
}
