// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the application.
package primary

import (
	"context"

	"github.com/example/bpos/internal/core/state"
)

// LifecycleService defines the primary port for lifecycle transitions.
// It is the single authority for advancing and rolling back projects;
// no other entry point mutates current_state.
type LifecycleService interface {
	// Advance moves a project to the next lifecycle state. A blocked gate
	// is not an error: the result comes back with Success=false and the
	// evaluated GateStatus. Force bypasses the gate, never the terminal
	// check.
	Advance(ctx context.Context, req AdvanceRequest) (*TransitionResult, error)

	// Rollback moves a project to an earlier state. Requires a reason;
	// rolling back from live additionally requires confirmation, returned
	// as a RequiresConfirmation outcome rather than an error.
	Rollback(ctx context.Context, req RollbackRequest) (*TransitionResult, error)

	// GateReport evaluates forward gates without side effects. With an
	// empty TargetState it reports every remaining gate from the current
	// state in order; otherwise just the (current, target) pair.
	GateReport(ctx context.Context, req GateReportRequest) (*GateReport, error)
}

// AdvanceRequest contains parameters for advancing a project.
type AdvanceRequest struct {
	ProjectID string
	ActorID   string
	Force     bool
}

// RollbackRequest contains parameters for rolling back a project.
type RollbackRequest struct {
	ProjectID   string
	ActorID     string
	Reason      string
	TargetState state.State // empty means previous state
	Confirmed   bool
}

// TransitionResult is the outcome of an advance or rollback.
type TransitionResult struct {
	Success              bool              `json:"success"`
	PreviousState        state.State       `json:"previous_state"`
	CurrentState         state.State       `json:"current_state"`
	Message              string            `json:"message"`
	GateStatus           *state.GateStatus `json:"gate_status,omitempty"`
	RequiresConfirmation bool              `json:"requires_confirmation,omitempty"`
	RollbackReason       string            `json:"rollback_reason,omitempty"`
}

// GateReportRequest contains parameters for a gate evaluation.
type GateReportRequest struct {
	ProjectID   string
	TargetState state.State // empty means all remaining forward gates
}

// GateReport is the read-only gate evaluation for one project.
type GateReport struct {
	ProjectID    string             `json:"project_id"`
	CurrentState state.State        `json:"current_state"`
	NextState    state.State        `json:"next_state,omitempty"`
	CanAdvance   bool               `json:"can_advance"`
	Gates        []state.GateStatus `json:"gates"`
}
