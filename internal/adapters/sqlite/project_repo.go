// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create persists a new project.
// The record must have ID and CurrentState pre-populated by the service layer.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	if project.ID == "" {
		return fmt.Errorf("project ID must be pre-populated by service layer")
	}
	if project.CurrentState == "" {
		return fmt.Errorf("project CurrentState must be pre-populated by service layer")
	}

	var desc sql.NullString
	if project.Description != "" {
		desc = sql.NullString{String: project.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, app_id, name, description, current_state) VALUES (?, ?, ?, ?, ?)",
		project.ID, project.AppID, project.Name, desc, project.CurrentState,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	record := &secondary.ProjectRecord{}
	var (
		desc      sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, app_id, name, description, current_state, created_at, updated_at FROM projects WHERE id = ?",
		id,
	).Scan(&record.ID, &record.AppID, &record.Name, &desc, &record.CurrentState, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Update persists ordinary edits (name, description). State never changes
// here; that path is ApplyTransition only.
func (r *ProjectRepository) Update(ctx context.Context, project *secondary.ProjectRecord) error {
	var desc sql.NullString
	if project.Description != "" {
		desc = sql.NullString{String: project.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		project.Name, desc, project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", project.ID, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a project and, via foreign keys, its dependent entities.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// List retrieves projects matching the given filters.
func (r *ProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	query := "SELECT id, app_id, name, description, current_state, created_at, updated_at FROM projects"
	args := []any{}
	where := ""

	if filters.AppID != "" {
		where = " WHERE app_id = ?"
		args = append(args, filters.AppID)
	}
	if filters.State != "" {
		if where == "" {
			where = " WHERE current_state = ?"
		} else {
			where += " AND current_state = ?"
		}
		args = append(args, filters.State)
	}

	query += where + " ORDER BY created_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		record := &secondary.ProjectRecord{}
		var (
			desc      sql.NullString
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.AppID, &record.Name, &desc, &record.CurrentState, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		record.Description = desc.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		projects = append(projects, record)
	}

	return projects, rows.Err()
}

// ApplyTransition applies one lifecycle transition atomically: the state
// update conditioned on the expected from-state, the audit append, and the
// optional passed-gate marker all commit together or not at all.
func (r *ProjectRepository) ApplyTransition(ctx context.Context, write secondary.TransitionWrite) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transition: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE projects SET current_state = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND current_state = ?",
		write.ToState, write.ProjectID, write.FromState,
	)
	if err != nil {
		return fmt.Errorf("failed to update project state: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check state update: %w", err)
	}
	if rows == 0 {
		// Either the project vanished or another caller moved it first.
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects WHERE id = ?", write.ProjectID).Scan(&count); err != nil {
			return fmt.Errorf("failed to inspect stale transition: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("project %s: %w", write.ProjectID, secondary.ErrNotFound)
		}
		return fmt.Errorf("project %s moved from %s: %w", write.ProjectID, write.FromState, secondary.ErrConcurrentModification)
	}

	if err := insertActivity(ctx, tx, &write.Audit); err != nil {
		return err
	}

	if write.GateMarker != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO project_gates (id, project_id, from_state, to_state, gate_passed, passed_at)
			 VALUES (?, ?, ?, ?, 1, CURRENT_TIMESTAMP)
			 ON CONFLICT(project_id, from_state, to_state)
			 DO UPDATE SET gate_passed = 1, passed_at = CURRENT_TIMESTAMP`,
			write.GateMarker.ID, write.GateMarker.ProjectID, write.GateMarker.FromState, write.GateMarker.ToState,
		)
		if err != nil {
			return fmt.Errorf("failed to record gate marker: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}
	return nil
}

// Stats aggregates dependent-entity counts in one round trip per table.
func (r *ProjectRepository) Stats(ctx context.Context, projectID string) (*secondary.ProjectStats, error) {
	stats := &secondary.ProjectStats{}

	queries := []struct {
		sql  string
		dest *int
	}{
		{"SELECT COUNT(*) FROM artifacts WHERE project_id = ?", &stats.ArtifactCount},
		{"SELECT COUNT(*) FROM topics WHERE project_id = ?", &stats.TopicCount},
		{"SELECT COUNT(*) FROM topics WHERE project_id = ? AND status = 'resolved'", &stats.ResolvedTopicCount},
		{"SELECT COUNT(*) FROM adrs WHERE project_id = ?", &stats.ADRCount},
		{"SELECT COUNT(*) FROM adrs WHERE project_id = ? AND status IN ('accepted', 'locked')", &stats.AcceptedADRCount},
		{"SELECT COUNT(*) FROM tasks WHERE project_id = ?", &stats.TaskCount},
		{"SELECT COUNT(*) FROM tasks WHERE project_id = ? AND status = 'done'", &stats.DoneTaskCount},
		{"SELECT COUNT(*) FROM tests WHERE project_id = ?", &stats.TestCount},
		{"SELECT COUNT(*) FROM tests WHERE project_id = ? AND status = 'passed'", &stats.PassedTestCount},
		{"SELECT COUNT(*) FROM risks WHERE project_id = ?", &stats.RiskCount},
		{"SELECT COUNT(*) FROM risks WHERE project_id = ? AND level IN ('high', 'critical')", &stats.HighRiskCount},
	}

	for _, q := range queries {
		if err := r.db.QueryRowContext(ctx, q.sql, projectID).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to aggregate project stats: %w", err)
		}
	}

	return stats, nil
}

// insertActivity appends one audit row inside the given transaction.
func insertActivity(ctx context.Context, tx *sql.Tx, entry *secondary.ActivityRecord) error {
	var actor, prevState, newState, rollbackReason sql.NullString
	if entry.ActorID != "" {
		actor = sql.NullString{String: entry.ActorID, Valid: true}
	}
	if entry.PreviousState != "" {
		prevState = sql.NullString{String: entry.PreviousState, Valid: true}
	}
	if entry.NewState != "" {
		newState = sql.NullString{String: entry.NewState, Valid: true}
	}
	if entry.RollbackReason != "" {
		rollbackReason = sql.NullString{String: entry.RollbackReason, Valid: true}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO activity_log
		 (id, project_id, actor_id, event_type, entity_type, entity_id, description,
		  previous_state, new_state, severity, is_rollback, rollback_reason, forced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.ProjectID, actor, entry.EventType, entry.EntityType, entry.EntityID,
		entry.Description, prevState, newState, entry.Severity, entry.IsRollback, rollbackReason, entry.Forced,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}
