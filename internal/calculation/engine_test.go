package calculation

import (
	"testing"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.False(t, engine.Debug, "Debug should default off")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestProject_RejectsNonPositiveYears(t *testing.T) {
	engine := NewEngine()

	for _, years := range []int{0, -1, -50} {
		_, err := engine.Project(domain.Plan{Years: years})
		assert.Error(t, err, "years=%d should be rejected", years)
		assert.ErrorIs(t, err, ErrInvalidPlan)
	}
}

func TestProject_SeriesLengths(t *testing.T) {
	engine := NewEngine()

	for _, years := range []int{1, 7, 50} {
		plan := domain.Plan{
			MonthlyContribution: dec("100"),
			Years:               years,
			AnnualReturn:        dec("0.07"),
		}
		proj, err := engine.Project(plan)
		require.NoError(t, err)
		assert.Len(t, proj.Yearly, years, "one yearly row per year")
		assert.Len(t, proj.Monthly, years*12, "twelve monthly rows per year")

		for i, row := range proj.Yearly {
			assert.Equal(t, i+1, row.Year, "yearly rows in increasing order")
		}
		for i, row := range proj.Monthly {
			assert.Equal(t, i+1, row.Month, "monthly rows in increasing order")
		}
	}
}

// Contributions only, no growth: 12 months of 100 make 1200 flat.
func TestProject_ContributionsOnly(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		MonthlyContribution: dec("100"),
		Years:               1,
	})
	require.NoError(t, err)

	row := proj.Yearly[0]
	assert.True(t, row.TotalContributions.Equal(dec("1200")), "got %s", row.TotalContributions)
	assert.True(t, row.InvestmentGain.Equal(decimal.Zero), "got %s", row.InvestmentGain)
	assert.True(t, row.TotalValue.Equal(dec("1200")), "got %s", row.TotalValue)
}

// Growth only: 1000 at 12% annual compounds monthly at 1% to
// 1000*(1.01)^12 = 1126.83.
func TestProject_GrowthOnly(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		InitialInvestment: dec("1000"),
		Years:             1,
		AnnualReturn:      dec("0.12"),
	})
	require.NoError(t, err)

	row := proj.Yearly[0]
	assert.True(t, row.TotalValue.Equal(dec("1126.83")), "got %s", row.TotalValue)
	assert.True(t, row.TotalContributions.Equal(dec("1000")), "got %s", row.TotalContributions)
	assert.True(t, row.InvestmentGain.Equal(dec("126.83")), "got %s", row.InvestmentGain)
}

// Rounding happens only at emission: the monthly rows for the
// growth-only plan must match full-precision accumulation rounded per
// row, not a rounded value carried forward.
func TestProject_RoundsAtEmissionOnly(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		InitialInvestment: dec("1000"),
		Years:             1,
		AnnualReturn:      dec("0.12"),
	})
	require.NoError(t, err)

	acc := dec("1000")
	growth := dec("1.01")
	for i, row := range proj.Monthly {
		acc = acc.Mul(growth)
		assert.True(t, row.TotalValue.Equal(acc.Round(2)),
			"month %d: want %s, got %s", i+1, acc.Round(2), row.TotalValue)
	}
}

func TestProject_LumpSumsOnly(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		Years: 2,
		LumpSums: []domain.LumpSum{
			{Year: 1, Amount: dec("500")},
			{Year: 2, Amount: dec("500")},
		},
	})
	require.NoError(t, err)

	assert.True(t, proj.Yearly[0].TotalValue.Equal(dec("500")), "got %s", proj.Yearly[0].TotalValue)
	assert.True(t, proj.Yearly[1].TotalValue.Equal(dec("1000")), "got %s", proj.Yearly[1].TotalValue)
}

// A lump sum posts at year end: it must show in the yearly row but in
// none of that year's monthly rows.
func TestProject_LumpSumTiming(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		MonthlyContribution: dec("100"),
		Years:               2,
		LumpSums:            []domain.LumpSum{{Year: 1, Amount: dec("5000")}},
	})
	require.NoError(t, err)

	for _, row := range proj.Monthly[:12] {
		assert.True(t, row.TotalValue.LessThan(dec("5000")),
			"month %d must not include the year-1 lump sum, got %s", row.Month, row.TotalValue)
	}
	assert.True(t, proj.Yearly[0].TotalValue.Equal(dec("6200")),
		"year 1 includes the lump sum, got %s", proj.Yearly[0].TotalValue)
	assert.True(t, proj.Yearly[1].TotalContributions.Equal(dec("7400")), "got %s", proj.Yearly[1].TotalContributions)
}

func TestProject_MultipleLumpSumsSameYear(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		Years: 1,
		LumpSums: []domain.LumpSum{
			{Year: 1, Amount: dec("300")},
			{Year: 1, Amount: dec("200")},
		},
	})
	require.NoError(t, err)
	assert.True(t, proj.Yearly[0].TotalValue.Equal(dec("500")), "both lump sums apply, got %s", proj.Yearly[0].TotalValue)
}

func TestProject_IgnoresOutOfRangeLumpSums(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		InitialInvestment: dec("100"),
		Years:             2,
		LumpSums: []domain.LumpSum{
			{Year: 0, Amount: dec("999")},
			{Year: 3, Amount: dec("999")},
			{Year: -1, Amount: dec("999")},
		},
	})
	require.NoError(t, err)
	assert.True(t, proj.Yearly[1].TotalValue.Equal(dec("100")),
		"out-of-range lump sums are never applied, got %s", proj.Yearly[1].TotalValue)
}

// Final contributions = initial + every monthly contribution at its
// grown rate + in-range lump sums.
func TestProject_ContributionAccounting(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment:   dec("1000"),
		MonthlyContribution: dec("100"),
		Years:               3,
		AnnualReturn:        dec("0.08"),
		AnnualIncreaseRate:  dec("0.10"),
		LumpSums:            []domain.LumpSum{{Year: 2, Amount: dec("500")}},
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	// 1000 + 1200 + 1320 + 1452 + 500
	want := dec("5472")
	got := proj.Yearly[2].TotalContributions
	assert.True(t, got.Equal(want), "want %s, got %s", want, got)
}

func TestProject_Monotonicity(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		InitialInvestment:   dec("5000"),
		MonthlyContribution: dec("250"),
		Years:               20,
		AnnualReturn:        dec("0.07"),
		AnnualIncreaseRate:  dec("0.03"),
		LumpSums:            []domain.LumpSum{{Year: 5, Amount: dec("10000")}},
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	for i := 1; i < len(proj.Yearly); i++ {
		prev, cur := proj.Yearly[i-1], proj.Yearly[i]
		assert.True(t, cur.TotalValue.GreaterThanOrEqual(prev.TotalValue),
			"total value must not decrease at year %d", cur.Year)
		assert.True(t, cur.TotalContributions.GreaterThanOrEqual(prev.TotalContributions),
			"contributions must not decrease at year %d", cur.Year)
	}
	for i := 1; i < len(proj.Monthly); i++ {
		assert.True(t, proj.Monthly[i].TotalValue.GreaterThanOrEqual(proj.Monthly[i-1].TotalValue),
			"total value must not decrease at month %d", proj.Monthly[i].Month)
	}
}

// Negative returns are accepted; the engine makes no monotonicity
// assumptions.
func TestProject_NegativeReturn(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{
		InitialInvestment: dec("1000"),
		Years:             1,
		AnnualReturn:      dec("-0.12"),
	})
	require.NoError(t, err)

	row := proj.Yearly[0]
	assert.True(t, row.TotalValue.LessThan(dec("1000")), "value shrinks, got %s", row.TotalValue)
	assert.True(t, row.InvestmentGain.IsNegative(), "gain is negative, got %s", row.InvestmentGain)
}

func TestProject_CalendarLabels(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		MonthlyContribution: dec("100"),
		Years:               1,
		Anchor:              &domain.CalendarAnchor{StartMonth: 11, StartYear: 2025},
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	first := proj.Monthly[0]
	assert.Equal(t, 11, first.CalendarMonth)
	assert.Equal(t, 2025, first.CalendarYear)
	assert.Equal(t, "November", first.MonthName)

	// Month wraps after December and carries the year.
	third := proj.Monthly[2]
	assert.Equal(t, 1, third.CalendarMonth)
	assert.Equal(t, 2026, third.CalendarYear)
	assert.Equal(t, "January", third.MonthName)
}

func TestProject_DefaultAnchor(t *testing.T) {
	engine := NewEngine()

	proj, err := engine.Project(domain.Plan{MonthlyContribution: dec("10"), Years: 1})
	require.NoError(t, err)

	first := proj.Monthly[0]
	assert.Equal(t, 1, first.CalendarMonth, "default anchor starts at month 1")
	assert.Equal(t, 0, first.CalendarYear, "default anchor starts at year 0")
}

func TestProject_MonthlyRowTracksContributionBase(t *testing.T) {
	engine := NewEngine()

	plan := domain.Plan{
		MonthlyContribution: dec("100"),
		Years:               2,
		AnnualIncreaseRate:  dec("0.10"),
	}
	proj, err := engine.Project(plan)
	require.NoError(t, err)

	assert.True(t, proj.Monthly[0].ContributionApplied.Equal(dec("100")))
	assert.True(t, proj.Monthly[11].ContributionApplied.Equal(dec("100")))
	assert.True(t, proj.Monthly[12].ContributionApplied.Equal(dec("110")),
		"contribution base grows at the year boundary, got %s", proj.Monthly[12].ContributionApplied)
}
