package scenes

import (
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

// Slider indexes; the order matches buildSliders.
const (
	sliderInitial = iota
	sliderMonthly
	sliderYears
	sliderReturn
	sliderIncrease
	sliderInflation
	sliderCount
)

// ParametersModel is the plan editing scene: one slider per scalar
// parameter, bounded to the ranges the engine is promised.
type ParametersModel struct {
	plan          domain.Plan
	sliders       []*components.ParameterSlider
	focusedSlider int
	width         int
	height        int
}

// NewParametersModel creates a new parameters scene model.
func NewParametersModel() *ParametersModel {
	return &ParametersModel{}
}

// SetPlan replaces the plan being edited and rebuilds the sliders.
func (m *ParametersModel) SetPlan(plan domain.Plan) {
	m.plan = plan
	m.buildSliders()
}

// Plan returns the plan with the current slider values applied.
func (m *ParametersModel) Plan() domain.Plan {
	return m.plan
}

func (m *ParametersModel) buildSliders() {
	m.sliders = make([]*components.ParameterSlider, sliderCount)

	m.sliders[sliderInitial] = components.NewParameterSlider(
		"Initial Investment", m.plan.InitialInvestment.InexactFloat64(), 0, 1_000_000, 1000).
		WithUnit("").WithFormat("$%.0f").WithWidth(40).
		WithDescription("Lump sum contributed at time zero")

	m.sliders[sliderMonthly] = components.NewParameterSlider(
		"Monthly Contribution", m.plan.MonthlyContribution.InexactFloat64(), 0, 10_000, 50).
		WithUnit("").WithFormat("$%.0f").WithWidth(40).
		WithDescription("Base recurring contribution")

	m.sliders[sliderYears] = components.NewParameterSlider(
		"Investment Horizon", float64(m.plan.Years), 1, 50, 1).
		WithUnit(" years").WithFormat("%.0f").WithWidth(40)

	m.sliders[sliderReturn] = components.NewParameterSlider(
		"Annual Return", toPercent(m.plan.AnnualReturn), 0, 20, 0.1).
		WithUnit("%").WithFormat("%.1f").WithWidth(40).
		WithDescription("Applied monthly as annual/12")

	m.sliders[sliderIncrease] = components.NewParameterSlider(
		"Annual Contribution Increase", toPercent(m.plan.AnnualIncreaseRate), 0, 10, 0.5).
		WithUnit("%").WithFormat("%.1f").WithWidth(40).
		WithDescription("Contribution growth at each year end")

	m.sliders[sliderInflation] = components.NewParameterSlider(
		"Inflation Rate", toPercent(m.plan.AnnualInflationRate), 0, 10, 0.1).
		WithUnit("%").WithFormat("%.1f").WithWidth(40).
		WithDescription("Used only for the inflation-adjusted view")

	if m.focusedSlider >= len(m.sliders) {
		m.focusedSlider = 0
	}
	m.sliders[m.focusedSlider].SetFocused(true)
}

// SetSize updates the scene dimensions.
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the parameters scene.
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.focusSlider(m.focusedSlider - 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.focusSlider(m.focusedSlider + 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))):
		m.sliders[m.focusedSlider].Decrement()
		return m, m.planChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))):
		m.sliders[m.focusedSlider].Increment()
		return m, m.planChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+left"))):
		m.sliders[m.focusedSlider].IncrementBy(-10)
		return m, m.planChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+right"))):
		m.sliders[m.focusedSlider].IncrementBy(10)
		return m, m.planChanged()
	}
	return m, nil
}

func (m *ParametersModel) focusSlider(index int) {
	if index < 0 {
		index = len(m.sliders) - 1
	}
	if index >= len(m.sliders) {
		index = 0
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = index
	m.sliders[m.focusedSlider].SetFocused(true)
}

// planChanged folds the slider values back into the plan and notifies
// the root model.
func (m *ParametersModel) planChanged() tea.Cmd {
	m.plan.InitialInvestment = decimal.NewFromFloat(m.sliders[sliderInitial].Value)
	m.plan.MonthlyContribution = decimal.NewFromFloat(m.sliders[sliderMonthly].Value)
	m.plan.Years = int(m.sliders[sliderYears].Value)
	m.plan.AnnualReturn = fromPercent(m.sliders[sliderReturn].Value)
	m.plan.AnnualIncreaseRate = fromPercent(m.sliders[sliderIncrease].Value)
	m.plan.AnnualInflationRate = fromPercent(m.sliders[sliderInflation].Value)

	plan := m.plan
	return func() tea.Msg {
		return tuimsg.PlanChangedMsg{Plan: plan}
	}
}

// View renders the parameters scene.
func (m *ParametersModel) View() string {
	if len(m.sliders) == 0 {
		return "No plan loaded."
	}

	var blocks []string
	for _, slider := range m.sliders {
		blocks = append(blocks, slider.Render())
	}

	sliderPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Render(strings.Join(blocks, "\n\n"))

	help := tuistyles.HelpDescStyle.Render(
		"↑↓ navigate • ← → adjust • shift+← → coarse • projection updates live")

	return lipgloss.JoinVertical(lipgloss.Left, sliderPane, "", help)
}

func toPercent(rate decimal.Decimal) float64 {
	return rate.Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func fromPercent(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Div(decimal.NewFromInt(100))
}
