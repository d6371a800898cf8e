package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/mhalvorsen/investcalc/internal/tui/components"
	"github.com/mhalvorsen/investcalc/internal/tui/tuimsg"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// ScenariosModel is the scenario browsing scene.
type ScenariosModel struct {
	scenarios     []domain.Scenario
	selectedIndex int
	cards         []*components.ScenarioCard
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model.
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenario list.
func (m *ScenariosModel) SetScenarios(scenarios []domain.Scenario) {
	m.scenarios = scenarios
	m.cards = nil

	for _, scenario := range scenarios {
		card := components.NewScenarioCard(scenario.Name).WithWidth(46)
		card.AddHighlight(fmt.Sprintf("%d years at %s%% annual return",
			scenario.Plan.Years, ratePercent(scenario.Plan.AnnualReturn)))
		card.AddHighlight(fmt.Sprintf("%s/month, %s initial",
			tuistyles.FormatCurrency(scenario.Plan.MonthlyContribution),
			tuistyles.FormatCurrency(scenario.Plan.InitialInvestment)))
		if n := len(scenario.Plan.LumpSums); n > 0 {
			card.AddHighlight(fmt.Sprintf("%d lump sum(s)", n))
		}
		m.cards = append(m.cards, card)
	}

	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions.
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently highlighted scenario name.
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the scenarios scene.
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}
	return m, nil
}

func (m *ScenariosModel) handleKeyPress(msg tea.KeyMsg) (*ScenariosModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
		if len(m.scenarios) > 0 {
			m.selectedIndex = len(m.scenarios) - 1
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		name := m.SelectedScenario()
		if name == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
		}
	}
	return m, nil
}

// View renders the scenarios scene.
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return "No scenarios available.\n\nLoad a configuration file with scenarios defined."
	}

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
	}

	leftPane := m.renderList()
	rightPane := m.renderDetails(m.scenarios[m.selectedIndex])

	content := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, "  ", rightPane)
	content += "\n\n"
	content += tuistyles.HelpDescStyle.Render("↑/k up • ↓/j down • Enter select • g top • G bottom")
	return content
}

func (m *ScenariosModel) renderList() string {
	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(40)

	title := tuistyles.TitleStyle.Render("Scenarios")
	list := components.ScenarioListCompact(m.cards, m.selectedIndex)
	return listStyle.Render(title + "\n" + list)
}

func (m *ScenariosModel) renderDetails(scenario domain.Scenario) string {
	detailStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorPrimary).
		Padding(1, 2).
		Width(54)

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	plan := scenario.Plan
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(scenario.Name))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Plan:"))
	content.WriteString("\n")
	lines := []string{
		fmt.Sprintf("Initial investment:   %s", tuistyles.FormatCurrency(plan.InitialInvestment)),
		fmt.Sprintf("Monthly contribution: %s", tuistyles.FormatCurrency(plan.MonthlyContribution)),
		fmt.Sprintf("Horizon:              %d years", plan.Years),
		fmt.Sprintf("Annual return:        %s%%", ratePercent(plan.AnnualReturn)),
		fmt.Sprintf("Annual increase:      %s%%", ratePercent(plan.AnnualIncreaseRate)),
		fmt.Sprintf("Inflation rate:       %s%%", ratePercent(plan.AnnualInflationRate)),
	}
	for _, line := range lines {
		content.WriteString(valueStyle.Render("  " + line))
		content.WriteString("\n")
	}

	if len(plan.LumpSums) > 0 {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render("Lump sums:"))
		content.WriteString("\n")
		for _, ls := range plan.LumpSums {
			content.WriteString(valueStyle.Render(fmt.Sprintf("  • year %d: %s",
				ls.Year, tuistyles.FormatCurrency(ls.Amount))))
			content.WriteString("\n")
		}
	}

	if plan.Anchor != nil {
		content.WriteString("\n")
		content.WriteString(valueStyle.Render(fmt.Sprintf("Starts %d/%d",
			plan.Anchor.StartMonth, plan.Anchor.StartYear)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	hintStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorInfo).Italic(true)
	content.WriteString(hintStyle.Render("Press Enter to project this scenario"))

	return detailStyle.Render(content.String())
}

func ratePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1)
}
