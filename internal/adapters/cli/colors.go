package cli

import (
	"github.com/fatih/color"

	"github.com/example/bpos/internal/core/state"
)

// stateColor picks a display color for a lifecycle state. Early states are
// cyan, active build states yellow, shippable states green.
func stateColor(s state.State) *color.Color {
	switch s {
	case state.StatePlanning, state.StateResearch:
		return color.New(color.FgCyan)
	case state.StateDecisionsLocked:
		return color.New(color.FgBlue)
	case state.StateBuilding, state.StateTesting:
		return color.New(color.FgYellow)
	case state.StateReadyToShip:
		return color.New(color.FgHiGreen)
	case state.StateLive:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

// stateSprint renders a state name with its display color.
func stateSprint(s string) string {
	return stateColor(state.State(s)).Sprint(s)
}
