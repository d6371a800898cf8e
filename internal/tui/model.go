package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhalvorsen/investcalc/internal/calculation"
	"github.com/mhalvorsen/investcalc/internal/config"
	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/mhalvorsen/investcalc/internal/tui/scenes"
)

// Model is the application state.
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	configPath string
	config     *domain.Config

	calcEngine *calculation.Engine

	// Current selection and its projection
	scenarioName string
	plan         domain.Plan
	projection   *domain.Projection
	summary      *domain.Summary
	breakdown    []domain.AnnualBreakdownRow

	// Projection cache keyed by the plan's parameter tuple. Slider
	// edits hit this before the engine; the engine itself never
	// memoizes.
	cache map[string]*domain.Projection

	scenariosModel  *scenes.ScenariosModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	tableModel      *scenes.TableModel

	err       error
	statusMsg string
}

// NewModel creates the application model for a config file path.
func NewModel(configPath string) Model {
	return Model{
		currentScene:    SceneScenarios,
		configPath:      configPath,
		calcEngine:      calculation.NewEngine(),
		cache:           make(map[string]*domain.Projection),
		scenariosModel:  scenes.NewScenariosModel(),
		parametersModel: scenes.NewParametersModel(),
		resultsModel:    scenes.NewResultsModel(),
		tableModel:      scenes.NewTableModel(),
		width:           80,
		height:          24,
	}
}

// Init loads the configuration file.
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// projectCmd computes the projection for a plan, consulting the cache
// first. The cache is owned here, not by the engine.
func (m *Model) projectCmd(scenarioName string, plan domain.Plan) tea.Cmd {
	engine := m.calcEngine
	cache := m.cache
	return func() tea.Msg {
		key := plan.CacheKey()
		proj, hit := cache[key]
		if !hit {
			var err error
			proj, err = engine.Project(plan)
			if err != nil {
				return ProjectionComputedMsg{ScenarioName: scenarioName, Err: err}
			}
			cache[key] = proj
		}
		return ProjectionComputedMsg{
			ScenarioName: scenarioName,
			Projection:   proj,
			Summary:      calculation.Summarize(proj),
			Breakdown:    calculation.AnnualBreakdown(plan, proj.Yearly),
			FromCache:    hit,
		}
	}
}
