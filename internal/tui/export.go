package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhalvorsen/investcalc/internal/output"
)

// exportCmd writes the yearly and monthly tables as CSV files in the
// working directory.
func (m *Model) exportCmd() tea.Cmd {
	if m.projection == nil || m.summary == nil {
		return nil
	}

	report := &output.Report{
		ScenarioName: m.scenarioName,
		Projection:   m.projection,
		Summary:      *m.summary,
		Breakdown:    m.breakdown,
	}
	slug := scenarioSlug(m.scenarioName)

	return func() tea.Msg {
		yearlyPath := slug + "_yearly.csv"
		monthlyPath := slug + "_monthly.csv"

		yearly, err := output.CSVYearlyFormatter{}.Format(report)
		if err != nil {
			return ExportCompleteMsg{Err: err}
		}
		if err := os.WriteFile(yearlyPath, yearly, 0o644); err != nil {
			return ExportCompleteMsg{Err: fmt.Errorf("failed to write %s: %w", yearlyPath, err)}
		}

		monthly, err := output.CSVMonthlyFormatter{}.Format(report)
		if err != nil {
			return ExportCompleteMsg{Err: err}
		}
		if err := os.WriteFile(monthlyPath, monthly, 0o644); err != nil {
			return ExportCompleteMsg{Err: fmt.Errorf("failed to write %s: %w", monthlyPath, err)}
		}

		return ExportCompleteMsg{YearlyPath: yearlyPath, MonthlyPath: monthlyPath}
	}
}

// scenarioSlug turns a scenario name into a safe filename prefix.
func scenarioSlug(name string) string {
	if name == "" {
		return "projection"
	}
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	return strings.Trim(slug, "_")
}
