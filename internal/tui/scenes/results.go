package scenes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/mhalvorsen/investcalc/internal/tui/components"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// ResultsModel is the summary metrics scene.
type ResultsModel struct {
	scenarioName string
	summary      *domain.Summary
	breakdown    []domain.AnnualBreakdownRow
	width        int
	height       int
}

// NewResultsModel creates a new results scene model.
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResults updates the displayed summary.
func (m *ResultsModel) SetResults(scenarioName string, summary *domain.Summary, breakdown []domain.AnnualBreakdownRow) {
	m.scenarioName = scenarioName
	m.summary = summary
	m.breakdown = breakdown
}

// SetSize updates the scene dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene; it is read-only.
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

// View renders the results scene.
func (m *ResultsModel) View() string {
	if m.summary == nil {
		return "No projection yet.\n\nAdjust parameters or select a scenario first."
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("Projection Summary"),
		tuistyles.SubtitleStyle.Render("Scenario: "+m.scenarioName),
	)

	metrics := m.renderMetrics()
	breakdown := m.renderBreakdown()
	help := tuistyles.HelpDescStyle.Render("p parameters • c chart • t table • e export CSV")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", metrics, "", breakdown, "", help)
}

func (m *ResultsModel) renderMetrics() string {
	s := m.summary

	cards := []*components.MetricCard{
		components.NewMetricCard("Final Value", tuistyles.FormatCurrency(s.FinalValue)).
			WithDescription(fmt.Sprintf("after %d years", s.YearsInvested)),
		components.NewMetricCard("Total Contributions", tuistyles.FormatCurrency(s.TotalContributions)).
			WithDescription(fmt.Sprintf("%s%% of final value", s.ContributionPercent.StringFixed(1))),
		components.NewMetricCard("Investment Gain", tuistyles.FormatCurrency(s.InvestmentGain)).
			WithTrend(!s.InvestmentGain.IsNegative(), s.GainPercent.StringFixed(1)+"% of final value"),
		components.NewMetricCard("ROI", optionalPercent(s.ROIPercent)),
		components.NewMetricCard("CAGR", optionalPercent(s.CAGRPercent)).
			WithDescription("requires a positive initial investment"),
	}

	return components.MetricGrid(cards, 3)
}

func (m *ResultsModel) renderBreakdown() string {
	if len(m.breakdown) == 0 {
		return ""
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	content := tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-6s %16s %16s", "Year", "Contribution", "Gain")) + "\n"

	maxRows := 10
	for i, row := range m.breakdown {
		if i >= maxRows {
			content += tuistyles.SubtitleStyle.Render(
				fmt.Sprintf("... and %d more years", len(m.breakdown)-maxRows))
			break
		}
		content += tuistyles.TableCellStyle.Render(
			fmt.Sprintf("%-6d %16s %16s",
				row.Year, row.Contribution.StringFixed(2), row.Gain.StringFixed(2))) + "\n"
	}

	title := tuistyles.TitleStyle.Render("Yearly Contributions vs Gains")
	return lipgloss.JoinVertical(lipgloss.Left, title, tableStyle.Render(content))
}

func optionalPercent(value *decimal.Decimal) string {
	if value == nil {
		return "N/A"
	}
	return value.StringFixed(2) + "%"
}
