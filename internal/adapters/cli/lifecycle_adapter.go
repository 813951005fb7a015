package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
)

// LifecycleAdapter is a thin adapter that translates CLI operations to
// LifecycleService calls. Gate-blocked and confirmation outcomes are printed,
// not returned as errors, matching the service contract.
type LifecycleAdapter struct {
	service primary.LifecycleService
	out     io.Writer
}

// NewLifecycleAdapter creates a new LifecycleAdapter with the given service.
func NewLifecycleAdapter(service primary.LifecycleService, out io.Writer) *LifecycleAdapter {
	return &LifecycleAdapter{
		service: service,
		out:     out,
	}
}

// Advance moves a project to the next lifecycle state.
func (a *LifecycleAdapter) Advance(ctx context.Context, projectID, actorID string, force bool) error {
	result, err := a.service.Advance(ctx, primary.AdvanceRequest{
		ProjectID: projectID,
		ActorID:   actorID,
		Force:     force,
	})
	if err != nil {
		return err
	}

	if !result.Success {
		fmt.Fprintf(a.out, "✗ Gate blocked: %s → %s\n", result.PreviousState, result.CurrentState)
		if result.GateStatus != nil {
			fmt.Fprintf(a.out, "  %s\n", result.GateStatus.BlockingReason)
		}
		fmt.Fprintln(a.out, "  Use --force to bypass the gate (audited)")
		return nil
	}

	fmt.Fprintf(a.out, "✓ Project %s advanced: %s → %s\n",
		projectID, stateSprint(string(result.PreviousState)), stateSprint(string(result.CurrentState)))
	if result.Message != "" {
		fmt.Fprintf(a.out, "  %s\n", result.Message)
	}
	return nil
}

// Rollback moves a project to an earlier lifecycle state.
func (a *LifecycleAdapter) Rollback(ctx context.Context, projectID, actorID, reason string, target state.State, confirmed bool) error {
	result, err := a.service.Rollback(ctx, primary.RollbackRequest{
		ProjectID:   projectID,
		ActorID:     actorID,
		Reason:      reason,
		TargetState: target,
		Confirmed:   confirmed,
	})
	if err != nil {
		return err
	}

	if result.RequiresConfirmation {
		fmt.Fprintf(a.out, "⚠ %s\n", result.Message)
		fmt.Fprintln(a.out, "  Re-run with --yes to confirm")
		return nil
	}
	if !result.Success {
		fmt.Fprintf(a.out, "✗ Rollback refused: %s\n", result.Message)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Project %s rolled back: %s → %s\n",
		projectID, stateSprint(string(result.PreviousState)), stateSprint(string(result.CurrentState)))
	fmt.Fprintf(a.out, "  Reason: %s\n", result.RollbackReason)
	return nil
}

// Gates prints the gate report for a project.
func (a *LifecycleAdapter) Gates(ctx context.Context, projectID string, target state.State) error {
	report, err := a.service.GateReport(ctx, primary.GateReportRequest{
		ProjectID:   projectID,
		TargetState: target,
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate gates: %w", err)
	}

	fmt.Fprintf(a.out, "\nProject %s is in state %s\n", report.ProjectID, stateSprint(string(report.CurrentState)))
	if len(report.Gates) == 0 {
		fmt.Fprintln(a.out, "No forward gates remain")
		fmt.Fprintln(a.out)
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-8s %s\n", "TRANSITION", "STATUS", "REQUIREMENT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, g := range report.Gates {
		status := "PASS"
		detail := g.Requirement
		if !g.CanAdvance {
			status = "BLOCKED"
			detail = g.BlockingReason
		}
		pair := fmt.Sprintf("%s → %s", g.FromState, g.ToState)
		fmt.Fprintf(a.out, "%-38s %-8s %s\n", pair, status, detail)
	}
	fmt.Fprintln(a.out)

	if report.CanAdvance {
		fmt.Fprintf(a.out, "Ready to advance to %s\n", stateSprint(string(report.NextState)))
	}
	return nil
}
