package output

import (
	"github.com/mhalvorsen/investcalc/internal/domain"
)

// Report bundles everything a formatter needs to render one scenario's
// projection.
type Report struct {
	ScenarioName string                      `json:"scenarioName"`
	Projection   *domain.Projection          `json:"projection"`
	Summary      domain.Summary              `json:"summary"`
	Breakdown    []domain.AnnualBreakdownRow `json:"annualBreakdown"`
	// InflationAdjusted marks a series deflated into today's money.
	InflationAdjusted bool `json:"inflationAdjusted"`
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVYearlyFormatter{},
	CSVMonthlyFormatter{},
	JSONFormatter{Pretty: true},
}

// GetFormatterByName returns the named formatter, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered format names in display order.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
