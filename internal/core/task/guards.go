// Package task contains the pure business logic for task readiness.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"fmt"

	"github.com/example/bpos/internal/core/state"
)

// Task statuses persisted on task rows.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusBlocked    = "blocked"
	StatusDone       = "done"
)

// StartContext provides the pre-fetched inputs for the start-readiness
// check. The caller resolves the dependency row and project state.
type StartContext struct {
	Status        string
	BlockedReason string
	AssignedTo    string

	// Dependency info, populated when the task depends on another task.
	HasDependency    bool
	DependencyTitle  string
	DependencyStatus string

	ProjectState state.State
}

// StartResult is the readiness verdict for one task.
type StartResult struct {
	CanStart bool
	Reason   string   // set when the status alone decides the outcome
	Blockers []string // unmet preconditions
	Warnings []string // advisory only, never block
}

// CanStart evaluates whether a task may be started.
// Rules:
//   - done and in_progress tasks cannot be started again
//   - an unfinished dependency blocks
//   - an explicit blocked status blocks with its recorded reason
//   - planning/live project states and a missing assignee only warn
func CanStart(ctx StartContext) StartResult {
	if ctx.Status == StatusDone {
		return StartResult{Reason: "Task is already completed"}
	}
	if ctx.Status == StatusInProgress {
		return StartResult{Reason: "Task is already in progress"}
	}

	var blockers, warnings []string

	if ctx.HasDependency && ctx.DependencyStatus != StatusDone {
		blockers = append(blockers, fmt.Sprintf("Blocked by task %q (status: %s)", ctx.DependencyTitle, ctx.DependencyStatus))
	}

	if ctx.Status == StatusBlocked {
		reason := ctx.BlockedReason
		if reason == "" {
			reason = "Task is marked as blocked"
		}
		blockers = append(blockers, reason)
	}

	switch ctx.ProjectState {
	case state.StatePlanning:
		warnings = append(warnings, "Project is still in planning phase")
	case state.StateLive:
		warnings = append(warnings, "Project is already live - ensure changes are tested")
	}

	if ctx.AssignedTo == "" {
		warnings = append(warnings, "Task is not assigned to anyone")
	}

	return StartResult{
		CanStart: len(blockers) == 0,
		Blockers: blockers,
		Warnings: warnings,
	}
}
