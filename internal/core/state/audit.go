package state

import "fmt"

// Severity classifies an audit entry.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Event types recorded in the activity log for lifecycle transitions.
const (
	EventStateChanged = "state_changed"
	EventRollback     = "rollback"
)

// AuditEntry is a value object describing one activity-log row for a
// lifecycle transition. The service layer persists it; it is never mutated
// after creation.
type AuditEntry struct {
	EventType      string
	Description    string
	PreviousState  State
	NewState       State
	Severity       Severity
	IsRollback     bool
	RollbackReason string
	Forced         bool
}

// AdvanceAudit builds the audit entry for a forward transition.
func AdvanceAudit(from, to State, forced bool) AuditEntry {
	return AuditEntry{
		EventType:     EventStateChanged,
		Description:   fmt.Sprintf("Project advanced from %s to %s", from, to),
		PreviousState: from,
		NewState:      to,
		Severity:      SeverityInfo,
		Forced:        forced,
	}
}

// RollbackAudit builds the audit entry for a backward transition.
// Rolling back out of live is critical; any other rollback is a warning.
func RollbackAudit(from, to State, reason string) AuditEntry {
	severity := SeverityWarning
	if from == StateLive {
		severity = SeverityCritical
	}
	return AuditEntry{
		EventType:      EventRollback,
		Description:    fmt.Sprintf("Project rolled back from %s to %s", from, to),
		PreviousState:  from,
		NewState:       to,
		Severity:       severity,
		IsRollback:     true,
		RollbackReason: reason,
	}
}
