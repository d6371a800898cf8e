// Package tuimsg holds the messages scenes send up to the root model.
// It is separate from the tui package so scenes can import it without
// an import cycle.
package tuimsg

import (
	"github.com/mhalvorsen/investcalc/internal/domain"
)

// ScenarioSelectedMsg signals a scenario has been chosen from the
// list.
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// PlanChangedMsg carries an edited plan; the root model recomputes
// the projection (through its cache) when it arrives.
type PlanChangedMsg struct {
	Plan domain.Plan
}

// ExportRequestedMsg asks the root model to write the yearly and
// monthly CSV files.
type ExportRequestedMsg struct{}
