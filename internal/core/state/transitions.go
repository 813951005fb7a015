package state

import (
	"errors"
	"fmt"
	"strings"
)

// Boundary and validation errors for transition planning. Gate failures and
// missing confirmation are not errors; they are structured outcomes carried
// on the service response.
var (
	ErrAtTerminalState       = errors.New("project is already at final state")
	ErrAtInitialState        = errors.New("project is already at initial state")
	ErrMissingRollbackReason = errors.New("reason is required for rollback")
	ErrInvalidRollbackTarget = errors.New("rollback target must be an earlier state")
)

// PlanAdvance determines the next state for a forward transition.
// force bypasses gate evaluation elsewhere, never this terminal check.
func PlanAdvance(current State) (State, error) {
	if _, err := IndexOf(current); err != nil {
		return "", err
	}
	next, ok := Next(current)
	if !ok {
		return "", ErrAtTerminalState
	}
	return next, nil
}

// RollbackPlan is the validated outcome of planning a backward transition.
type RollbackPlan struct {
	Target State
	Reason string
	// RequiresConfirmation is set when rolling back out of live and the
	// caller has not confirmed. No state change may be applied.
	RequiresConfirmation bool
}

// PlanRollback validates a backward transition. The reason is mandatory and
// must not be blank. When target is empty the previous state is used.
// Rolling back from live demands explicit confirmation; without it the plan
// comes back with RequiresConfirmation set and must not be applied.
func PlanRollback(current State, target State, reason string, confirmed bool) (RollbackPlan, error) {
	if strings.TrimSpace(reason) == "" {
		return RollbackPlan{}, ErrMissingRollbackReason
	}

	currentIdx, err := IndexOf(current)
	if err != nil {
		return RollbackPlan{}, err
	}

	if target == "" {
		prev, ok := Previous(current)
		if !ok {
			return RollbackPlan{}, ErrAtInitialState
		}
		target = prev
	} else {
		targetIdx, err := IndexOf(target)
		if err != nil {
			return RollbackPlan{}, err
		}
		if targetIdx >= currentIdx {
			return RollbackPlan{}, fmt.Errorf("%w: %s is not before %s", ErrInvalidRollbackTarget, target, current)
		}
	}

	plan := RollbackPlan{Target: target, Reason: reason}
	if current == StateLive && !confirmed {
		plan.RequiresConfirmation = true
	}
	return plan, nil
}
