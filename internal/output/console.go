package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a summary block plus the yearly table as
// plain text for terminal display.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	title := "INVESTMENT PROJECTION"
	if report.ScenarioName != "" {
		title = fmt.Sprintf("INVESTMENT PROJECTION: %s", report.ScenarioName)
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 80))
	if report.InflationAdjusted {
		fmt.Fprintln(buf, "All amounts are inflation-adjusted (today's money).")
	}

	s := report.Summary
	fmt.Fprintf(buf, "Years Invested:       %d\n", s.YearsInvested)
	fmt.Fprintf(buf, "Initial Investment:   %s\n", FormatCurrency(s.InitialInvestment))
	fmt.Fprintf(buf, "Total Contributions:  %s\n", FormatCurrency(s.TotalContributions))
	fmt.Fprintf(buf, "Investment Gain:      %s\n", FormatCurrency(s.InvestmentGain))
	fmt.Fprintf(buf, "Final Value:          %s\n", FormatCurrency(s.FinalValue))
	fmt.Fprintf(buf, "Return on Investment: %s\n", FormatPercent(s.ROIPercent))
	fmt.Fprintf(buf, "CAGR:                 %s\n", FormatPercent(s.CAGRPercent))
	fmt.Fprintf(buf, "Contributions %%:      %s\n", FormatPercent(&s.ContributionPercent))
	fmt.Fprintf(buf, "Investment Gains %%:   %s\n", FormatPercent(&s.GainPercent))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "YEARLY PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("-", 80))
	fmt.Fprintf(buf, "%-6s %18s %18s %18s %10s\n",
		"Year", "Contributions", "Gain", "Total Value", "ROI")
	for _, row := range report.Projection.Yearly {
		fmt.Fprintf(buf, "%-6d %18s %18s %18s %10s\n",
			row.Year,
			row.TotalContributions.StringFixed(2),
			row.InvestmentGain.StringFixed(2),
			row.TotalValue.StringFixed(2),
			FormatPercent(row.ROIPercent))
	}

	if len(report.Breakdown) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "YEARLY CONTRIBUTIONS VS GAINS")
		fmt.Fprintln(buf, strings.Repeat("-", 80))
		fmt.Fprintf(buf, "%-6s %18s %18s\n", "Year", "Contribution", "Gain")
		for _, row := range report.Breakdown {
			fmt.Fprintf(buf, "%-6d %18s %18s\n",
				row.Year, row.Contribution.StringFixed(2), row.Gain.StringFixed(2))
		}
	}

	return buf.Bytes(), nil
}

// FormatCurrency renders a monetary amount with a currency symbol and
// two decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent renders a percentage, or "N/A" for an undefined
// metric.
func FormatPercent(pct *decimal.Decimal) string {
	if pct == nil {
		return "N/A"
	}
	return pct.StringFixed(2) + "%"
}
