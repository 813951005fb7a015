package state

import (
	"errors"
	"testing"
)

func TestPlanAdvance(t *testing.T) {
	tests := []struct {
		name    string
		current State
		want    State
		wantErr error
	}{
		{name: "planning advances to research", current: StatePlanning, want: StateResearch},
		{name: "ready_to_ship advances to live", current: StateReadyToShip, want: StateLive},
		{name: "live is terminal", current: StateLive, wantErr: ErrAtTerminalState},
		{name: "unknown state", current: State("limbo"), wantErr: ErrUnknownState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanAdvance(tt.current)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PlanAdvance(%q) error = %v, want %v", tt.current, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlanAdvance(%q) error = %v", tt.current, err)
			}
			if got != tt.want {
				t.Errorf("PlanAdvance(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestPlanRollback(t *testing.T) {
	tests := []struct {
		name        string
		current     State
		target      State
		reason      string
		confirmed   bool
		wantTarget  State
		wantConfirm bool
		wantErr     error
	}{
		{
			name:       "defaults to previous state",
			current:    StateBuilding,
			reason:     "design flaw",
			wantTarget: StateDecisionsLocked,
		},
		{
			name:       "explicit earlier target",
			current:    StateTesting,
			target:     StatePlanning,
			reason:     "starting over",
			wantTarget: StatePlanning,
		},
		{
			name:    "empty reason",
			current: StateBuilding,
			reason:  "",
			wantErr: ErrMissingRollbackReason,
		},
		{
			name:    "whitespace-only reason",
			current: StateLive,
			reason:  "   \t",
			wantErr: ErrMissingRollbackReason,
		},
		{
			name:    "reason required even at initial state",
			current: StatePlanning,
			reason:  " ",
			wantErr: ErrMissingRollbackReason,
		},
		{
			name:    "initial state has nowhere to go",
			current: StatePlanning,
			reason:  "undo",
			wantErr: ErrAtInitialState,
		},
		{
			name:    "target equal to current",
			current: StateBuilding,
			target:  StateBuilding,
			reason:  "noop",
			wantErr: ErrInvalidRollbackTarget,
		},
		{
			name:    "target after current",
			current: StateResearch,
			target:  StateLive,
			reason:  "nope",
			wantErr: ErrInvalidRollbackTarget,
		},
		{
			name:    "unknown target",
			current: StateBuilding,
			target:  State("limbo"),
			reason:  "bad target",
			wantErr: ErrUnknownState,
		},
		{
			name:        "live without confirmation",
			current:     StateLive,
			reason:      "found a critical bug",
			wantTarget:  StateReadyToShip,
			wantConfirm: true,
		},
		{
			name:       "live with confirmation",
			current:    StateLive,
			reason:     "found a critical bug",
			confirmed:  true,
			wantTarget: StateReadyToShip,
		},
		{
			name:       "non-live never needs confirmation",
			current:    StateTesting,
			reason:     "flaky suite",
			wantTarget: StateBuilding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanRollback(tt.current, tt.target, tt.reason, tt.confirmed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PlanRollback error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlanRollback error = %v", err)
			}
			if plan.Target != tt.wantTarget {
				t.Errorf("Target = %q, want %q", plan.Target, tt.wantTarget)
			}
			if plan.RequiresConfirmation != tt.wantConfirm {
				t.Errorf("RequiresConfirmation = %v, want %v", plan.RequiresConfirmation, tt.wantConfirm)
			}
			if plan.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", plan.Reason, tt.reason)
			}
		})
	}
}

func TestAdvanceAudit(t *testing.T) {
	entry := AdvanceAudit(StatePlanning, StateResearch, false)

	if entry.EventType != EventStateChanged {
		t.Errorf("EventType = %q, want %q", entry.EventType, EventStateChanged)
	}
	if entry.Description != "Project advanced from planning to research" {
		t.Errorf("Description = %q", entry.Description)
	}
	if entry.Severity != SeverityInfo {
		t.Errorf("Severity = %q, want info", entry.Severity)
	}
	if entry.IsRollback || entry.Forced {
		t.Error("advance entry should not be rollback or forced")
	}

	forced := AdvanceAudit(StateResearch, StateDecisionsLocked, true)
	if !forced.Forced {
		t.Error("forced advance should record Forced")
	}
}

func TestRollbackAudit(t *testing.T) {
	tests := []struct {
		name         string
		from         State
		to           State
		wantSeverity Severity
	}{
		{name: "from live is critical", from: StateLive, to: StateReadyToShip, wantSeverity: SeverityCritical},
		{name: "elsewhere is warning", from: StateBuilding, to: StateDecisionsLocked, wantSeverity: SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := RollbackAudit(tt.from, tt.to, "found a critical bug")

			if entry.EventType != EventRollback {
				t.Errorf("EventType = %q, want %q", entry.EventType, EventRollback)
			}
			if !entry.IsRollback {
				t.Error("IsRollback should be set")
			}
			if entry.RollbackReason != "found a critical bug" {
				t.Errorf("RollbackReason = %q", entry.RollbackReason)
			}
			if entry.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", entry.Severity, tt.wantSeverity)
			}
			if entry.PreviousState != tt.from || entry.NewState != tt.to {
				t.Errorf("states = %s -> %s, want %s -> %s", entry.PreviousState, entry.NewState, tt.from, tt.to)
			}
		})
	}
}
