package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/secondary"
)

// Event types recorded for dependent-entity changes.
const (
	eventEntityCreated = "entity_created"
	eventEntityUpdated = "entity_updated"
	eventEntityDeleted = "entity_deleted"
)

// logEntityEvent appends one entity-level audit entry. Entity events are
// best-effort context, not part of the entity write's transaction; a failed
// append surfaces as an error so callers never silently lose audit rows.
func logEntityEvent(ctx context.Context, activityRepo secondary.ActivityLogRepository, projectID, actorID, eventType, entityType, entityID, description string) error {
	entry := &secondary.ActivityRecord{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		ActorID:     actorID,
		EventType:   eventType,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Severity:    string(state.SeverityInfo),
	}
	if err := activityRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to log %s event: %w", eventType, err)
	}
	return nil
}
