package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// LifecycleServiceImpl implements the LifecycleService interface. It is the
// only code path that changes a project's current_state.
type LifecycleServiceImpl struct {
	projectRepo secondary.ProjectRepository
	counts      secondary.GateCountReader
}

// NewLifecycleService creates a new LifecycleService with injected dependencies.
func NewLifecycleService(projectRepo secondary.ProjectRepository, counts secondary.GateCountReader) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		projectRepo: projectRepo,
		counts:      counts,
	}
}

// Advance moves a project to the next lifecycle state.
func (s *LifecycleServiceImpl) Advance(ctx context.Context, req primary.AdvanceRequest) (*primary.TransitionResult, error) {
	// 1. Fetch the project and plan the forward transition
	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	current := state.State(project.CurrentState)

	next, err := state.PlanAdvance(current)
	if err != nil {
		return nil, err
	}

	// 2. Evaluate the gate unless forced. A blocked gate is a structured
	// outcome, not an error.
	if !req.Force {
		status, err := s.evaluateGate(ctx, req.ProjectID, current, next)
		if err != nil {
			return nil, err
		}
		if !status.CanAdvance {
			return &primary.TransitionResult{
				Success:       false,
				PreviousState: current,
				CurrentState:  current,
				Message:       status.BlockingReason,
				GateStatus:    &status,
			}, nil
		}
	}

	// 3. Apply atomically: conditional state update, audit append, gate marker
	audit := state.AdvanceAudit(current, next, req.Force)
	write := secondary.TransitionWrite{
		ProjectID: req.ProjectID,
		FromState: string(current),
		ToState:   string(next),
		Audit:     auditRecord(req.ProjectID, req.ActorID, audit),
		GateMarker: &secondary.GateMarker{
			ID:        uuid.NewString(),
			ProjectID: req.ProjectID,
			FromState: string(current),
			ToState:   string(next),
		},
	}
	if err := s.projectRepo.ApplyTransition(ctx, write); err != nil {
		return nil, err
	}

	return &primary.TransitionResult{
		Success:       true,
		PreviousState: current,
		CurrentState:  next,
		Message:       audit.Description,
	}, nil
}

// Rollback moves a project to an earlier state.
func (s *LifecycleServiceImpl) Rollback(ctx context.Context, req primary.RollbackRequest) (*primary.TransitionResult, error) {
	// 1. Fetch the project and validate the backward transition
	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	current := state.State(project.CurrentState)

	plan, err := state.PlanRollback(current, req.TargetState, req.Reason, req.Confirmed)
	if err != nil {
		return nil, err
	}

	// 2. Live rollbacks need an explicit confirmation round trip
	if plan.RequiresConfirmation {
		return &primary.TransitionResult{
			Success:              false,
			PreviousState:        current,
			CurrentState:         current,
			Message:              fmt.Sprintf("Rolling back a live project to %s requires confirmation", plan.Target),
			RequiresConfirmation: true,
		}, nil
	}

	// 3. Apply atomically; rollbacks never record a gate marker
	audit := state.RollbackAudit(current, plan.Target, plan.Reason)
	write := secondary.TransitionWrite{
		ProjectID: req.ProjectID,
		FromState: string(current),
		ToState:   string(plan.Target),
		Audit:     auditRecord(req.ProjectID, req.ActorID, audit),
	}
	if err := s.projectRepo.ApplyTransition(ctx, write); err != nil {
		return nil, err
	}

	return &primary.TransitionResult{
		Success:        true,
		PreviousState:  current,
		CurrentState:   plan.Target,
		Message:        audit.Description,
		RollbackReason: plan.Reason,
	}, nil
}

// GateReport evaluates forward gates without side effects.
func (s *LifecycleServiceImpl) GateReport(ctx context.Context, req primary.GateReportRequest) (*primary.GateReport, error) {
	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	current := state.State(project.CurrentState)

	report := &primary.GateReport{
		ProjectID:    req.ProjectID,
		CurrentState: current,
		Gates:        []state.GateStatus{},
	}

	// Explicit target: evaluate just that pair.
	if req.TargetState != "" {
		if _, err := state.IndexOf(req.TargetState); err != nil {
			return nil, err
		}
		status, err := s.evaluateGate(ctx, req.ProjectID, current, req.TargetState)
		if err != nil {
			return nil, err
		}
		report.NextState = req.TargetState
		report.CanAdvance = status.CanAdvance
		report.Gates = append(report.Gates, status)
		return report, nil
	}

	// No target: walk every remaining adjacent pair in order. CanAdvance
	// reflects only the immediate next gate.
	for cursor := current; ; {
		next, ok := state.Next(cursor)
		if !ok {
			break
		}
		status, err := s.evaluateGate(ctx, req.ProjectID, cursor, next)
		if err != nil {
			return nil, err
		}
		if cursor == current {
			report.NextState = next
			report.CanAdvance = status.CanAdvance
		}
		report.Gates = append(report.Gates, status)
		cursor = next
	}

	return report, nil
}

// evaluateGate resolves the requirement for one pair and evaluates it
// against the live entity count.
func (s *LifecycleServiceImpl) evaluateGate(ctx context.Context, projectID string, from, to state.State) (state.GateStatus, error) {
	requirement, ok := state.RequirementFor(from, to)
	if !ok {
		return state.NoRequirementStatus(from, to), nil
	}

	count, err := s.gateCount(ctx, projectID, requirement.Check)
	if err != nil {
		return state.GateStatus{}, err
	}
	return requirement.Evaluate(count), nil
}

// gateCount fetches the one entity count a gate check depends on. The
// switch is exhaustive over the closed GateCheck set.
func (s *LifecycleServiceImpl) gateCount(ctx context.Context, projectID string, check state.GateCheck) (int, error) {
	switch check {
	case state.CheckHasPRDArtifact:
		return s.counts.CountArtifactsByType(ctx, projectID, "prd")
	case state.CheckHasResolvedTopics:
		return s.counts.CountTopicsByStatus(ctx, projectID, "resolved")
	case state.CheckHasAcceptedADR:
		return s.counts.CountADRsByStatuses(ctx, projectID, []string{"accepted", "locked"})
	case state.CheckHasDoneTask:
		return s.counts.CountTasksByStatus(ctx, projectID, "done")
	case state.CheckHasPassedTest:
		return s.counts.CountTestsByStatus(ctx, projectID, "passed")
	case state.CheckAlwaysPass:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown gate check %q", check)
	}
}

// auditRecord converts a core audit entry into the persistence shape with a
// generated row ID.
func auditRecord(projectID, actorID string, entry state.AuditEntry) secondary.ActivityRecord {
	return secondary.ActivityRecord{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		ActorID:        actorID,
		EventType:      entry.EventType,
		EntityType:     "project",
		EntityID:       projectID,
		Description:    entry.Description,
		PreviousState:  string(entry.PreviousState),
		NewState:       string(entry.NewState),
		Severity:       string(entry.Severity),
		IsRollback:     entry.IsRollback,
		RollbackReason: entry.RollbackReason,
		Forced:         entry.Forced,
	}
}
