package compare

import (
	"context"
	"fmt"

	"github.com/mhalvorsen/investcalc/internal/calculation"
	"github.com/mhalvorsen/investcalc/internal/domain"
)

// CompareEngine orchestrates scenario comparison.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine around a calculation
// engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareOptions configures comparison behavior.
type CompareOptions struct {
	BaseScenarioName string
	ConfigPath       string
}

// Compare projects every scenario in the config and reports each
// alternative's deltas against the base scenario.
func (ce *CompareEngine) Compare(ctx context.Context, config *domain.Config, options CompareOptions) (*ComparisonSet, error) {
	base, err := config.ScenarioByName(options.BaseScenarioName)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}

	baseResult, err := ce.runScenario(base)
	if err != nil {
		return nil, fmt.Errorf("failed to project base scenario %q: %w", base.Name, err)
	}

	set := &ComparisonSet{
		BaseScenarioName: base.Name,
		BaseResult:       baseResult,
		ConfigPath:       options.ConfigPath,
	}

	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == base.Name {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := ce.runScenario(scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to project scenario %q: %w", scenario.Name, err)
		}

		result.FinalValueDiffFromBase = result.FinalValue.Sub(baseResult.FinalValue)
		if baseResult.FinalValue.GreaterThan(decimalZero) {
			result.FinalValuePctFromBase = result.FinalValueDiffFromBase.
				Div(baseResult.FinalValue).Mul(decimalHundred).Round(2)
		}
		result.GainDiffFromBase = result.InvestmentGain.Sub(baseResult.InvestmentGain)
		result.ContribDiffFromBase = result.TotalContributions.Sub(baseResult.TotalContributions)

		set.AlternativeResults = append(set.AlternativeResults, *result)
	}

	return set, nil
}

func (ce *CompareEngine) runScenario(scenario *domain.Scenario) (*ComparisonResult, error) {
	proj, err := ce.CalcEngine.Project(scenario.Plan)
	if err != nil {
		return nil, err
	}
	summary := calculation.Summarize(proj)
	return &ComparisonResult{
		ScenarioName:       scenario.Name,
		Summary:            summary,
		FinalValue:         summary.FinalValue,
		TotalContributions: summary.TotalContributions,
		InvestmentGain:     summary.InvestmentGain,
	}, nil
}
