package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
)

// mockLifecycleService implements primary.LifecycleService for testing
type mockLifecycleService struct {
	advanceFn    func(ctx context.Context, req primary.AdvanceRequest) (*primary.TransitionResult, error)
	rollbackFn   func(ctx context.Context, req primary.RollbackRequest) (*primary.TransitionResult, error)
	gateReportFn func(ctx context.Context, req primary.GateReportRequest) (*primary.GateReport, error)

	lastAdvanceReq  primary.AdvanceRequest
	lastRollbackReq primary.RollbackRequest
}

func (m *mockLifecycleService) Advance(ctx context.Context, req primary.AdvanceRequest) (*primary.TransitionResult, error) {
	m.lastAdvanceReq = req
	if m.advanceFn != nil {
		return m.advanceFn(ctx, req)
	}
	return &primary.TransitionResult{
		Success:       true,
		PreviousState: state.StatePlanning,
		CurrentState:  state.StateResearch,
	}, nil
}

func (m *mockLifecycleService) Rollback(ctx context.Context, req primary.RollbackRequest) (*primary.TransitionResult, error) {
	m.lastRollbackReq = req
	if m.rollbackFn != nil {
		return m.rollbackFn(ctx, req)
	}
	return &primary.TransitionResult{
		Success:        true,
		PreviousState:  state.StateTesting,
		CurrentState:   state.StateBuilding,
		RollbackReason: req.Reason,
	}, nil
}

func (m *mockLifecycleService) GateReport(ctx context.Context, req primary.GateReportRequest) (*primary.GateReport, error) {
	if m.gateReportFn != nil {
		return m.gateReportFn(ctx, req)
	}
	return &primary.GateReport{ProjectID: req.ProjectID, CurrentState: state.StateLive}, nil
}

func TestLifecycleAdapter_Advance(t *testing.T) {
	mock := &mockLifecycleService{}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	err := adapter.Advance(context.Background(), "proj-001", "alice", false)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if mock.lastAdvanceReq.ProjectID != "proj-001" || mock.lastAdvanceReq.ActorID != "alice" {
		t.Errorf("request not forwarded: %+v", mock.lastAdvanceReq)
	}
	out := buf.String()
	if !strings.Contains(out, "✓ Project proj-001 advanced") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "planning") || !strings.Contains(out, "research") {
		t.Errorf("states missing from output: %q", out)
	}
}

func TestLifecycleAdapter_AdvanceBlocked(t *testing.T) {
	mock := &mockLifecycleService{
		advanceFn: func(ctx context.Context, req primary.AdvanceRequest) (*primary.TransitionResult, error) {
			return &primary.TransitionResult{
				Success:       false,
				PreviousState: state.StateResearch,
				CurrentState:  state.StateResearch,
				GateStatus: &state.GateStatus{
					FromState:      state.StateResearch,
					ToState:        state.StateDecisionsLocked,
					BlockingReason: "Requires at least 3 resolved topics (1/3)",
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	// Blocked gate is reported, not returned as an error.
	if err := adapter.Advance(context.Background(), "proj-001", "", false); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "✗ Gate blocked") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Requires at least 3 resolved topics (1/3)") {
		t.Errorf("blocking reason missing: %q", out)
	}
	if !strings.Contains(out, "--force") {
		t.Errorf("force hint missing: %q", out)
	}
}

func TestLifecycleAdapter_Rollback(t *testing.T) {
	mock := &mockLifecycleService{}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	err := adapter.Rollback(context.Background(), "proj-001", "bob", "flaky integration suite", "", false)
	if err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	if mock.lastRollbackReq.Reason != "flaky integration suite" {
		t.Errorf("reason not forwarded: %+v", mock.lastRollbackReq)
	}
	out := buf.String()
	if !strings.Contains(out, "✓ Project proj-001 rolled back") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Reason: flaky integration suite") {
		t.Errorf("reason missing from output: %q", out)
	}
}

func TestLifecycleAdapter_RollbackRequiresConfirmation(t *testing.T) {
	mock := &mockLifecycleService{
		rollbackFn: func(ctx context.Context, req primary.RollbackRequest) (*primary.TransitionResult, error) {
			return &primary.TransitionResult{
				Success:              false,
				RequiresConfirmation: true,
				Message:              "Rolling back a live project to ready_to_ship requires confirmation",
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	if err := adapter.Rollback(context.Background(), "proj-001", "", "regression", "", false); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "requires confirmation") || !strings.Contains(out, "--yes") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestLifecycleAdapter_Gates(t *testing.T) {
	mock := &mockLifecycleService{
		gateReportFn: func(ctx context.Context, req primary.GateReportRequest) (*primary.GateReport, error) {
			return &primary.GateReport{
				ProjectID:    req.ProjectID,
				CurrentState: state.StateResearch,
				NextState:    state.StateDecisionsLocked,
				CanAdvance:   false,
				Gates: []state.GateStatus{
					{
						FromState:      state.StateResearch,
						ToState:        state.StateDecisionsLocked,
						CanAdvance:     false,
						Requirement:    "At least 3 research topics resolved",
						BlockingReason: "Requires at least 3 resolved topics (2/3)",
					},
					{
						FromState:   state.StateDecisionsLocked,
						ToState:     state.StateBuilding,
						CanAdvance:  true,
						Requirement: "At least 1 accepted or locked ADR",
					},
				},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	if err := adapter.Gates(context.Background(), "proj-001", ""); err != nil {
		t.Fatalf("Gates failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "BLOCKED") {
		t.Errorf("blocked gate not shown: %q", out)
	}
	if !strings.Contains(out, "PASS") {
		t.Errorf("passing gate not shown: %q", out)
	}
	if !strings.Contains(out, "Requires at least 3 resolved topics (2/3)") {
		t.Errorf("blocking reason missing: %q", out)
	}
	if strings.Contains(out, "Ready to advance") {
		t.Errorf("should not show ready line when blocked: %q", out)
	}
}

func TestLifecycleAdapter_GatesAtTerminal(t *testing.T) {
	mock := &mockLifecycleService{}
	var buf bytes.Buffer
	adapter := NewLifecycleAdapter(mock, &buf)

	if err := adapter.Gates(context.Background(), "proj-001", ""); err != nil {
		t.Fatalf("Gates failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No forward gates remain") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
