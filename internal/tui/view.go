package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhalvorsen/investcalc/internal/tui/components"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(tuistyles.ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress ESC to continue...", m.err.Error())))
	}

	var content string
	switch m.currentScene {
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneChart:
		content = m.renderChart()
	case SceneTable:
		content = m.tableModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title and status bars.
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4
	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("investcalc - Investment Projection Calculator")

	breadcrumb := m.currentScene.String()
	if m.scenarioName != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.scenarioName)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		tuistyles.SubtitleStyle.Render(breadcrumb),
	)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("s", "scenarios"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("c", "chart"),
		formatShortcut("t", "table"),
		formatShortcut("e", "export"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.statusMsg != "" {
		note := tuistyles.SubtitleStyle.Render(m.statusMsg)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(note) - 4
		if width > 0 {
			statusText += strings.Repeat(" ", width) + note
		}
	}

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// renderChart plots the cumulative yearly series.
func (m Model) renderChart() string {
	if m.projection == nil {
		return "No projection yet.\n\nAdjust parameters or select a scenario first."
	}

	yearly := m.projection.Yearly
	values := make([]float64, len(yearly))
	contributions := make([]float64, len(yearly))
	gains := make([]float64, len(yearly))
	labels := make([]string, len(yearly))
	for i, row := range yearly {
		values[i] = row.TotalValue.InexactFloat64()
		contributions[i] = row.TotalContributions.InexactFloat64()
		gains[i] = row.InvestmentGain.InexactFloat64()
		labels[i] = fmt.Sprintf("Y%d", row.Year)
	}

	chart := components.NewASCIIChart("Projected Growth").
		AddSeries("Total Value", values, tuistyles.ColorChartLine1).
		AddSeries("Contributions", contributions, tuistyles.ColorChartLine2).
		AddSeries("Gain", gains, tuistyles.ColorChartLine3).
		WithLabels(labels).
		WithXAxisLabel("Years")

	if m.width > 40 {
		chart.WithSize(min(m.width-8, 100), 16)
	}

	return chart.Render()
}

func (m Model) renderHelp() string {
	helpText := `investcalc - Investment Projection Calculator

KEYBOARD SHORTCUTS:
  s        Scenario list
  p        Parameter sliders
  r        Projection summary
  c        Growth chart
  t        Data table (m toggles yearly/monthly)
  e        Export yearly and monthly CSV files
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

PARAMETERS:
  Arrow keys move between sliders and adjust values.
  The projection recomputes on every change; repeated
  parameter tuples are served from a cache.

EXPORT:
  'e' writes the yearly and monthly tables as CSV files
  in the current directory.`

	return tuistyles.BorderStyle.Render(helpText)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
