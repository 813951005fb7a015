package state

import "fmt"

// GateCheck identifies the predicate behind a gate requirement. The set is
// closed: callers switch over it exhaustively, so a new check is a
// compile-time change, not a stringly-typed lookup.
type GateCheck string

const (
	CheckHasPRDArtifact    GateCheck = "has_prd_artifact"
	CheckHasResolvedTopics GateCheck = "has_3_resolved_topics"
	CheckHasAcceptedADR    GateCheck = "has_accepted_adr"
	CheckHasDoneTask       GateCheck = "has_done_task"
	CheckHasPassedTest     GateCheck = "has_passed_test"
	CheckAlwaysPass        GateCheck = "always_pass"
)

// Requirement is a static gate definition for one adjacent forward pair.
type Requirement struct {
	From          State
	To            State
	Check         GateCheck
	Description   string
	RequiredCount int
}

// Requirements is the single authoritative gate table: exactly one entry per
// adjacent forward pair, no entries for backward or non-adjacent pairs.
// Immutable; safe for concurrent reads.
var Requirements = []Requirement{
	{
		From:          StatePlanning,
		To:            StateResearch,
		Check:         CheckHasPRDArtifact,
		Description:   "Requires at least 1 PRD artifact",
		RequiredCount: 1,
	},
	{
		From:          StateResearch,
		To:            StateDecisionsLocked,
		Check:         CheckHasResolvedTopics,
		Description:   "Requires at least 3 resolved topics",
		RequiredCount: 3,
	},
	{
		From:          StateDecisionsLocked,
		To:            StateBuilding,
		Check:         CheckHasAcceptedADR,
		Description:   "Requires at least 1 accepted ADR",
		RequiredCount: 1,
	},
	{
		From:          StateBuilding,
		To:            StateTesting,
		Check:         CheckHasDoneTask,
		Description:   "Requires at least 1 completed task",
		RequiredCount: 1,
	},
	{
		From:          StateTesting,
		To:            StateReadyToShip,
		Check:         CheckHasPassedTest,
		Description:   "Requires at least 1 passed test",
		RequiredCount: 1,
	},
	{
		From:          StateReadyToShip,
		To:            StateLive,
		Check:         CheckAlwaysPass,
		Description:   "Manual approval to go live",
		RequiredCount: 0,
	},
}

// RequirementFor returns the gate requirement for the given pair.
// ok=false means no requirement is defined for the pair.
func RequirementFor(from, to State) (Requirement, bool) {
	for _, r := range Requirements {
		if r.From == from && r.To == to {
			return r, true
		}
	}
	return Requirement{}, false
}

// GateStatus is the point-in-time evaluation result for one candidate
// transition. It is derived, never persisted as a source of truth.
type GateStatus struct {
	FromState      State  `json:"from_state"`
	ToState        State  `json:"to_state"`
	CanAdvance     bool   `json:"can_advance"`
	Requirement    string `json:"requirement"`
	CurrentCount   int    `json:"current_count"`
	RequiredCount  int    `json:"required_count"`
	BlockingReason string `json:"blocking_reason,omitempty"`
}

// NoRequirementStatus is the permissive default for pairs without a gate
// requirement. Deliberate: ad-hoc or future state pairs never hard-fail.
func NoRequirementStatus(from, to State) GateStatus {
	return GateStatus{
		FromState:     from,
		ToState:       to,
		CanAdvance:    true,
		Requirement:   "No specific requirement",
		CurrentCount:  0,
		RequiredCount: 0,
	}
}

// Evaluate computes the gate status for this requirement given the current
// count of satisfying entities. The always-pass check ignores the count.
func (r Requirement) Evaluate(count int) GateStatus {
	status := GateStatus{
		FromState:     r.From,
		ToState:       r.To,
		Requirement:   r.Description,
		CurrentCount:  count,
		RequiredCount: r.RequiredCount,
	}

	if r.Check == CheckAlwaysPass {
		status.CanAdvance = true
		status.CurrentCount = 1
		status.RequiredCount = 1
		return status
	}

	status.CanAdvance = count >= r.RequiredCount
	if !status.CanAdvance {
		status.BlockingReason = fmt.Sprintf("%s (%d/%d)", r.Description, count, r.RequiredCount)
	}
	return status
}
