package scenes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// TableModel shows the projection as a scrollable data table, at
// yearly or monthly granularity.
type TableModel struct {
	yearly  []domain.ProjectionRow
	monthly []domain.MonthlyRow
	table   table.Model
	monthlyView bool
	width   int
	height  int
}

// NewTableModel creates a new table scene model.
func NewTableModel() *TableModel {
	t := table.New(table.WithFocused(true), table.WithHeight(16))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	styles.Selected = styles.Selected.
		Foreground(tuistyles.ColorAccent).
		Bold(true)
	t.SetStyles(styles)

	return &TableModel{table: t}
}

// SetProjection replaces the displayed series.
func (m *TableModel) SetProjection(proj *domain.Projection) {
	if proj == nil {
		m.yearly = nil
		m.monthly = nil
		return
	}
	m.yearly = proj.Yearly
	m.monthly = proj.Monthly
	m.rebuild()
}

// SetSize updates the scene dimensions.
func (m *TableModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 10 {
		m.table.SetHeight(height - 8)
	}
}

func (m *TableModel) rebuild() {
	if m.monthlyView {
		m.table.SetColumns([]table.Column{
			{Title: "Month", Width: 6},
			{Title: "Calendar", Width: 10},
			{Title: "Contribution", Width: 14},
			{Title: "Contributions", Width: 16},
			{Title: "Gain", Width: 14},
			{Title: "Total Value", Width: 16},
		})
		rows := make([]table.Row, 0, len(m.monthly))
		for _, r := range m.monthly {
			rows = append(rows, table.Row{
				strconv.Itoa(r.Month),
				r.MonthName[:3] + " " + strconv.Itoa(r.CalendarYear),
				r.ContributionApplied.StringFixed(2),
				r.TotalContributions.StringFixed(2),
				r.InvestmentGain.StringFixed(2),
				r.TotalValue.StringFixed(2),
			})
		}
		m.table.SetRows(rows)
	} else {
		m.table.SetColumns([]table.Column{
			{Title: "Year", Width: 6},
			{Title: "Contributions", Width: 16},
			{Title: "Gain", Width: 16},
			{Title: "Total Value", Width: 16},
			{Title: "ROI", Width: 10},
		})
		rows := make([]table.Row, 0, len(m.yearly))
		for _, r := range m.yearly {
			roi := "N/A"
			if r.ROIPercent != nil {
				roi = r.ROIPercent.StringFixed(2) + "%"
			}
			rows = append(rows, table.Row{
				strconv.Itoa(r.Year),
				r.TotalContributions.StringFixed(2),
				r.InvestmentGain.StringFixed(2),
				r.TotalValue.StringFixed(2),
				roi,
			})
		}
		m.table.SetRows(rows)
	}
	m.table.GotoTop()
}

// Update handles messages for the table scene.
func (m *TableModel) Update(msg tea.Msg) (*TableModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, key.NewBinding(key.WithKeys("m"))) {
			m.monthlyView = !m.monthlyView
			m.rebuild()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table scene.
func (m *TableModel) View() string {
	if len(m.yearly) == 0 {
		return "No projection yet.\n\nAdjust parameters or select a scenario first."
	}

	granularity := "yearly"
	if m.monthlyView {
		granularity = "monthly"
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("Projection Table"),
		tuistyles.SubtitleStyle.Render("Granularity: "+granularity),
	)

	help := tuistyles.HelpDescStyle.Render("↑↓ scroll • m toggle monthly/yearly • e export CSV")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View(), "", help)
}
