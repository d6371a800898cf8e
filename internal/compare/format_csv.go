package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for comparison results.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"TotalContributions",
		"InvestmentGain",
		"FinalValue",
		"CAGRPercent",
		"FinalValueDiffFromBase",
		"FinalValuePctFromBase",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	cagr := ""
	if result.Summary.CAGRPercent != nil {
		cagr = result.Summary.CAGRPercent.StringFixed(2)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		result.TotalContributions.StringFixed(2),
		result.InvestmentGain.StringFixed(2),
		result.FinalValue.StringFixed(2),
		cagr,
		result.FinalValueDiffFromBase.StringFixed(2),
		result.FinalValuePctFromBase.StringFixed(2),
	}
}
