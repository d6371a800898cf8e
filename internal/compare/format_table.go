package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("INVESTMENT SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Contributions",
		numWidth, "Gain",
		numWidth, "Final Value",
		numWidth, "CAGR"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			sb.WriteString(fmt.Sprintf("  Final Value:    %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.FinalValueDiffFromBase),
				alt.FinalValueDiffFromBase.Abs().StringFixed(2),
				alt.FinalValuePctFromBase.StringFixed(1)))

			if !alt.GainDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Gain:           %s$%s\n",
					tf.deltaSymbol(alt.GainDiffFromBase),
					alt.GainDiffFromBase.Abs().StringFixed(2)))
			}

			if !alt.ContribDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Contributions:  %s$%s\n",
					tf.deltaSymbol(alt.ContribDiffFromBase),
					alt.ContribDiffFromBase.Abs().StringFixed(2)))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Highest final value: %s\n", compSet.BestFinalValue()))
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	cagr := "N/A"
	if result.Summary.CAGRPercent != nil {
		cagr = result.Summary.CAGRPercent.StringFixed(2) + "%"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, "$"+result.TotalContributions.StringFixed(2),
		numWidth, "$"+result.InvestmentGain.StringFixed(2),
		numWidth, "$"+result.FinalValue.StringFixed(2),
		numWidth, cagr)
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}
