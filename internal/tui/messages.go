package tui

import (
	"github.com/mhalvorsen/investcalc/internal/domain"
)

// Scene identifies a screen in the TUI.
type Scene int

const (
	SceneScenarios Scene = iota
	SceneParameters
	SceneResults
	SceneChart
	SceneTable
	SceneHelp
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneScenarios:
		return "Scenarios"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneChart:
		return "Chart"
	case SceneTable:
		return "Table"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals the configuration file has been parsed and
// validated.
type ConfigLoadedMsg struct {
	Config *domain.Config
}

// ProjectionComputedMsg carries a freshly computed (or cache-served)
// projection and its derived metrics.
type ProjectionComputedMsg struct {
	ScenarioName string
	Projection   *domain.Projection
	Summary      domain.Summary
	Breakdown    []domain.AnnualBreakdownRow
	FromCache    bool
	Err          error
}

// ExportCompleteMsg reports the outcome of a CSV export.
type ExportCompleteMsg struct {
	YearlyPath  string
	MonthlyPath string
	Err         error
}
