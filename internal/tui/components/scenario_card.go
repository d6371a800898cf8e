package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// ScenarioCard is a compact overview of one saved plan scenario.
type ScenarioCard struct {
	Name       string
	Highlights []string // key plan parameters
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a new scenario card.
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:  name,
		Width: 46,
	}
}

// AddHighlight appends a key parameter line.
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected.
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width.
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the bordered card.
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	content.WriteString("\n")

	if len(s.Highlights) > 0 {
		highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
		for _, h := range s.Highlights {
			content.WriteString("\n")
			content.WriteString(highlightStyle.Render("• " + h))
		}
	}

	borderColor := tuistyles.ColorBorder
	if s.IsSelected {
		borderColor = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(s.Width)

	return cardStyle.Render(content.String())
}

// RenderCompact returns a single-line version for selection menus.
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{tuistyles.TitleStyle.Render(s.Name)}
	if len(s.Highlights) > 0 {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("• "+s.Highlights[0]))
	}
	return strings.Join(parts, " ")
}

// ScenarioListCompact renders a selectable list of scenario cards.
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle
		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		rendered[i] = style.Render(fmt.Sprintf("%s%s", prefix, card.RenderCompact()))
	}

	return strings.Join(rendered, "\n")
}
