package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveAnchor(t *testing.T) {
	var p Plan
	assert.Equal(t, DefaultAnchor, p.EffectiveAnchor())

	p.Anchor = &CalendarAnchor{StartMonth: 4, StartYear: 2027}
	assert.Equal(t, CalendarAnchor{StartMonth: 4, StartYear: 2027}, p.EffectiveAnchor())
}

func TestPlanMonths(t *testing.T) {
	p := Plan{Years: 3}
	assert.Equal(t, 36, p.Months())
}

func TestCacheKey_DistinguishesParameterTuples(t *testing.T) {
	base := Plan{
		InitialInvestment:   decimal.NewFromInt(1000),
		MonthlyContribution: decimal.NewFromInt(100),
		Years:               10,
		AnnualReturn:        decimal.NewFromFloat(0.07),
	}

	assert.Equal(t, base.CacheKey(), base.CacheKey(), "key is stable")

	variants := []Plan{base, base, base, base}
	variants[0].MonthlyContribution = decimal.NewFromInt(101)
	variants[1].Years = 11
	variants[2].LumpSums = []LumpSum{{Year: 3, Amount: decimal.NewFromInt(500)}}
	variants[3].Anchor = &CalendarAnchor{StartMonth: 2, StartYear: 2026}

	for i, v := range variants {
		assert.NotEqual(t, base.CacheKey(), v.CacheKey(), "variant %d must key differently", i)
	}
}

func TestScenarioByName(t *testing.T) {
	cfg := Config{Scenarios: []Scenario{
		{Name: "baseline"},
		{Name: "aggressive"},
	}}

	s, err := cfg.ScenarioByName("aggressive")
	require.NoError(t, err)
	assert.Equal(t, "aggressive", s.Name)

	_, err = cfg.ScenarioByName("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline", "error lists available names")
}
