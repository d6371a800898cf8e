package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhalvorsen/investcalc/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable plan parameter with a visual
// slider bar.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Unit        string // e.g. "%", " years", "$"
	Format      string // e.g. "%.2f", "%.0f"
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width.
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithDescription adds help text under the slider.
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// SetFocused sets the focus state.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by one step, clamped to Max.
func (p *ParameterSlider) Increment() {
	if v := p.Value + p.Step; v <= p.Max {
		p.Value = v
	} else {
		p.Value = p.Max
	}
}

// Decrement decreases the value by one step, clamped to Min.
func (p *ParameterSlider) Decrement() {
	if v := p.Value - p.Step; v >= p.Min {
		p.Value = v
	} else {
		p.Value = p.Min
	}
}

// IncrementBy applies n steps at once (coarse adjustment).
func (p *ParameterSlider) IncrementBy(n int) {
	p.SetValue(p.Value + float64(n)*p.Step)
}

// SetValue sets the value directly, clamping to the range.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value's position within the range.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) formatValue(v float64) string {
	s := fmt.Sprintf(p.Format, v)
	if p.Unit != "" {
		s += p.Unit
	}
	return s
}

// Render returns the styled slider block.
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(p.formatValue(p.Value)))
	content.WriteString("\n")
	content.WriteString(p.renderBar(p.Width))

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(p.formatValue(p.Min) + "  ─  " + p.formatValue(p.Max)))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	if p.IsFocused {
		content.WriteString("\n")
		hintStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorInfo).Italic(true)
		content.WriteString(hintStyle.Render("← → adjust • shift+← → coarse • ↑↓ navigate"))
	}

	return content.String()
}

// RenderCompact returns a single-line version with a mini bar.
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(p.Label+":"),
		valueStyle.Render(p.formatValue(p.Value)),
		p.renderBar(10))
}

// renderBar draws the slider track with the thumb at the value's
// position.
func (p *ParameterSlider) renderBar(width int) string {
	filled := int(math.Round(float64(width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty := width - filled; empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
