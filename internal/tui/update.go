package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhalvorsen/investcalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.parametersModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.tableModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.scenariosModel.SetScenarios(msg.Config.Scenarios)
		// Project the first scenario right away so every scene has
		// data to show.
		if len(msg.Config.Scenarios) > 0 {
			first := msg.Config.Scenarios[0]
			m.scenarioName = first.Name
			m.plan = first.Plan
			m.parametersModel.SetPlan(first.Plan)
			return m, m.projectCmd(first.Name, first.Plan)
		}
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		scenario, err := m.config.ScenarioByName(msg.ScenarioName)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.scenarioName = scenario.Name
		m.plan = scenario.Plan
		m.parametersModel.SetPlan(scenario.Plan)
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, m.projectCmd(scenario.Name, scenario.Plan)

	case tuimsg.PlanChangedMsg:
		m.plan = msg.Plan
		return m, m.projectCmd(m.scenarioName, msg.Plan)

	case tuimsg.ExportRequestedMsg:
		return m, m.exportCmd()

	case ProjectionComputedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.projection = msg.Projection
		summary := msg.Summary
		m.summary = &summary
		m.breakdown = msg.Breakdown
		m.resultsModel.SetResults(msg.ScenarioName, m.summary, m.breakdown)
		m.tableModel.SetProjection(msg.Projection)
		return m, nil

	case ExportCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.statusMsg = fmt.Sprintf("Exported %s and %s", msg.YearlyPath, msg.MonthlyPath)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes global shortcuts, then delegates to the
// current scene.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "esc":
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.currentScene != SceneScenarios {
			prev := m.previousScene
			if prev == m.currentScene {
				prev = SceneScenarios
			}
			return m, navigate(prev)
		}

	case "s":
		if m.currentScene != SceneScenarios {
			return m, navigate(SceneScenarios)
		}

	case "p":
		if m.currentScene != SceneParameters {
			return m, navigate(SceneParameters)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigate(SceneResults)
		}

	case "c":
		if m.currentScene != SceneChart {
			return m, navigate(SceneChart)
		}

	case "t":
		if m.currentScene != SceneTable {
			return m, navigate(SceneTable)
		}

	case "e":
		if m.projection != nil {
			return m, m.exportCmd()
		}
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates a message to the active scene's model.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneTable:
		m.tableModel, cmd = m.tableModel.Update(msg)
	}
	return m, cmd
}
