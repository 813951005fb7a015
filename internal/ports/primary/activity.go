package primary

import "context"

// ActivityService defines the primary port for reading the audit trail.
type ActivityService interface {
	// ListActivity returns the newest entries for a project, most recent
	// first. limit <= 0 means the default page size.
	ListActivity(ctx context.Context, projectID string, limit int) ([]*ActivityEntry, error)
}

// ActivityEntry represents one audit-trail row at the port boundary.
type ActivityEntry struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	ActorID        string `json:"actor_id,omitempty"`
	EventType      string `json:"event_type"`
	EntityType     string `json:"entity_type"`
	EntityID       string `json:"entity_id"`
	Description    string `json:"description"`
	PreviousState  string `json:"previous_state,omitempty"`
	NewState       string `json:"new_state,omitempty"`
	Severity       string `json:"severity"`
	IsRollback     bool   `json:"is_rollback"`
	RollbackReason string `json:"rollback_reason,omitempty"`
	Forced         bool   `json:"forced"`
	CreatedAt      string `json:"created_at"`
}

// AssistantService defines the primary port for the drafting assistant.
type AssistantService interface {
	// Draft generates text for the given action with project context
	// folded into the prompt.
	Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error)
}

// DraftRequest contains parameters for one assistant call.
type DraftRequest struct {
	Action    string `json:"action"` // e.g. draft_prd, draft_adr, suggest_topics
	ProjectID string `json:"project_id"`
	Prompt    string `json:"prompt"`
	Context   string `json:"context"`
}

// DraftResponse carries the generated text.
type DraftResponse struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}
