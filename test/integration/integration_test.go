package integration

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mhalvorsen/investcalc/internal/calculation"
	"github.com/mhalvorsen/investcalc/internal/compare"
	"github.com/mhalvorsen/investcalc/internal/config"
	"github.com/mhalvorsen/investcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

// TestProjectionPipeline runs the full config -> engine -> output
// pipeline against the example configuration.
func TestProjectionPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err, "example config should load and validate")
	require.Len(t, cfg.Scenarios, 3)

	engine := calculation.NewEngine()

	for _, scenario := range cfg.Scenarios {
		scenario := scenario
		t.Run(scenario.Name, func(t *testing.T) {
			proj, err := engine.Project(scenario.Plan)
			require.NoError(t, err)
			require.Len(t, proj.Yearly, scenario.Plan.Years)
			require.Len(t, proj.Monthly, scenario.Plan.Years*12)

			summary := calculation.Summarize(proj)
			assert.True(t, summary.FinalValue.GreaterThan(decimal.Zero))
			// contributions (initial included) + gain recompose the value
			recomposed := summary.TotalContributions.Add(summary.InvestmentGain)
			diff := summary.FinalValue.Sub(recomposed).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
				"composition identity off by %s", diff)

			report := &output.Report{
				ScenarioName: scenario.Name,
				Projection:   proj,
				Summary:      summary,
				Breakdown:    calculation.AnnualBreakdown(scenario.Plan, proj.Yearly),
			}
			for _, name := range output.FormatterNames() {
				data, err := output.GetFormatterByName(name).Format(report)
				require.NoError(t, err, "formatter %s", name)
				assert.NotEmpty(t, data, "formatter %s", name)
			}
		})
	}
}

// TestInflationAdjustedPipeline checks that the real-value series stays
// consistent end to end.
func TestInflationAdjustedPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	scenario, err := cfg.ScenarioByName("Steady Saver")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	nominal, err := engine.Project(scenario.Plan)
	require.NoError(t, err)

	real := calculation.AdjustForInflation(nominal, scenario.Plan.AnnualInflationRate)
	require.Len(t, real.Yearly, len(nominal.Yearly))

	for i := range real.Yearly {
		assert.True(t, real.Yearly[i].TotalValue.LessThan(nominal.Yearly[i].TotalValue),
			"year %d: deflated value should be below nominal", i+1)
	}

	report := &output.Report{
		ScenarioName:      scenario.Name,
		Projection:        real,
		Summary:           calculation.Summarize(real),
		InflationAdjusted: true,
	}
	data, err := output.ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inflation-adjusted")
}

// TestComparisonPipeline compares every scenario in the example config
// and renders the results in all three formats.
func TestComparisonPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	ce := compare.NewCompareEngine(calculation.NewEngine())
	set, err := ce.Compare(context.Background(), cfg, compare.CompareOptions{
		BaseScenarioName: "Steady Saver",
		ConfigPath:       exampleConfig,
	})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, "Aggressive Growth", set.BestFinalValue())

	table := (&compare.TableFormatter{}).Format(set)
	assert.Contains(t, table, "Steady Saver (base)")

	csvOut, err := (&compare.CSVFormatter{}).Format(set)
	require.NoError(t, err)
	assert.Equal(t, 4, len(strings.Split(strings.TrimSpace(csvOut), "\n")))

	jsonOut, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)
	var decoded compare.ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &decoded))
	assert.Equal(t, "Steady Saver", decoded.BaseScenarioName)
}

// TestGoalSeekPipeline solves a target from a config scenario and
// verifies the solved contribution actually reaches it.
func TestGoalSeekPipeline(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	scenario, err := cfg.ScenarioByName("Late Start")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	target := decimal.NewFromInt(300000)
	result, err := engine.RequiredMonthlyContribution(context.Background(), scenario.Plan, target)
	require.NoError(t, err)

	solved := scenario.Plan
	solved.MonthlyContribution = result.MonthlyContribution
	proj, err := engine.Project(solved)
	require.NoError(t, err)
	assert.True(t, proj.FinalRow().TotalValue.GreaterThanOrEqual(target),
		"solved contribution %s should reach the target", result.MonthlyContribution)
}
