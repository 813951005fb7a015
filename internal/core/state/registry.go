// Package state contains the pure business logic for the project lifecycle.
// This is part of the Functional Core - no I/O, only pure functions.
package state

import "fmt"

// State represents a project lifecycle state.
type State string

const (
	StatePlanning        State = "planning"
	StateResearch        State = "research"
	StateDecisionsLocked State = "decisions_locked"
	StateBuilding        State = "building"
	StateTesting         State = "testing"
	StateReadyToShip     State = "ready_to_ship"
	StateLive            State = "live"
)

// Order is the fixed lifecycle order. Projects advance one state at a time;
// there is no branching and no cycle. StatePlanning is initial, StateLive
// is terminal.
var Order = []State{
	StatePlanning,
	StateResearch,
	StateDecisionsLocked,
	StateBuilding,
	StateTesting,
	StateReadyToShip,
	StateLive,
}

// ErrUnknownState is returned when a value is not one of the seven
// lifecycle states.
var ErrUnknownState = fmt.Errorf("unknown project state")

// IndexOf returns the position of s in the lifecycle order.
func IndexOf(s State) (int, error) {
	for i, candidate := range Order {
		if candidate == s {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownState, s)
}

// IsValid reports whether s is a recognized lifecycle state.
func IsValid(s State) bool {
	_, err := IndexOf(s)
	return err == nil
}

// Parse converts a raw string into a State, rejecting unknown values.
func Parse(raw string) (State, error) {
	s := State(raw)
	if !IsValid(s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, raw)
	}
	return s, nil
}

// Next returns the state after s, or ok=false when s is terminal.
func Next(s State) (State, bool) {
	idx, err := IndexOf(s)
	if err != nil || idx >= len(Order)-1 {
		return "", false
	}
	return Order[idx+1], true
}

// Previous returns the state before s, or ok=false when s is initial.
func Previous(s State) (State, bool) {
	idx, err := IndexOf(s)
	if err != nil || idx <= 0 {
		return "", false
	}
	return Order[idx-1], true
}

// IsTerminal reports whether s is the final lifecycle state.
func IsTerminal(s State) bool {
	return s == StateLive
}

// IsInitial reports whether s is the first lifecycle state.
func IsInitial(s State) bool {
	return s == StatePlanning
}
