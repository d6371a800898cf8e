package compare

import (
	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one scenario's projection summary plus its
// deltas against the base scenario.
type ComparisonResult struct {
	ScenarioName string         `json:"scenarioName"`
	Summary      domain.Summary `json:"summary"`

	// Key metrics
	FinalValue         decimal.Decimal `json:"finalValue"`
	TotalContributions decimal.Decimal `json:"totalContributions"`
	InvestmentGain     decimal.Decimal `json:"investmentGain"`

	// Comparison to base
	FinalValueDiffFromBase decimal.Decimal `json:"finalValueDiffFromBase"`
	FinalValuePctFromBase  decimal.Decimal `json:"finalValuePctFromBase"`
	GainDiffFromBase       decimal.Decimal `json:"gainDiffFromBase"`
	ContribDiffFromBase    decimal.Decimal `json:"contribDiffFromBase"`
}

// ComparisonSet is a collection of scenario comparisons against a
// single base scenario.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	ConfigPath         string             `json:"configPath"`
}

// BestFinalValue returns the name of the scenario with the highest
// projected final value, base included.
func (cs *ComparisonSet) BestFinalValue() string {
	if cs.BaseResult == nil {
		return ""
	}
	best := cs.BaseResult.ScenarioName
	bestValue := cs.BaseResult.FinalValue
	for _, alt := range cs.AlternativeResults {
		if alt.FinalValue.GreaterThan(bestValue) {
			best = alt.ScenarioName
			bestValue = alt.FinalValue
		}
	}
	return best
}
