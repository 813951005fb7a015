package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with
// SQLite. The table is append-only; there are no update or delete paths.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity-log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append inserts one activity entry. Used for entity-level events; lifecycle
// transitions append through ProjectRepository.ApplyTransition instead so
// the audit row shares the state-change transaction.
func (r *ActivityLogRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	if entry.ID == "" {
		return fmt.Errorf("activity ID must be pre-populated by service layer")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin activity append: %w", err)
	}
	defer tx.Rollback()

	if err := insertActivity(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

// ListByProject retrieves the newest entries for a project, most recent
// first.
func (r *ActivityLogRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*secondary.ActivityRecord, error) {
	query := `SELECT id, project_id, actor_id, event_type, entity_type, entity_id, description,
		previous_state, new_state, severity, is_rollback, rollback_reason, forced, created_at
		FROM activity_log WHERE project_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{projectID}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.ActivityRecord
	for rows.Next() {
		record := &secondary.ActivityRecord{}
		var (
			actor, prevState, newState, rollbackReason sql.NullString

			createdAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &actor, &record.EventType, &record.EntityType,
			&record.EntityID, &record.Description, &prevState, &newState, &record.Severity,
			&record.IsRollback, &rollbackReason, &record.Forced, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		record.ActorID = actor.String
		record.PreviousState = prevState.String
		record.NewState = newState.String
		record.RollbackReason = rollbackReason.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, record)
	}

	return entries, rows.Err()
}
