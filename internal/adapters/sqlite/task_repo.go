package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create persists a new task.
func (r *TaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	if task.ID == "" {
		return fmt.Errorf("task ID must be pre-populated by service layer")
	}
	if task.Status == "" {
		return fmt.Errorf("task Status must be pre-populated by service layer")
	}

	var desc, dependsOn, assignedTo sql.NullString
	if task.Description != "" {
		desc = sql.NullString{String: task.Description, Valid: true}
	}
	if task.DependsOnTaskID != "" {
		dependsOn = sql.NullString{String: task.DependsOnTaskID, Valid: true}
	}
	if task.AssignedTo != "" {
		assignedTo = sql.NullString{String: task.AssignedTo, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (id, project_id, title, description, status, depends_on_task_id, assigned_to) VALUES (?, ?, ?, ?, ?, ?, ?)",
		task.ID, task.ProjectID, task.Title, desc, task.Status, dependsOn, assignedTo,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	record := &secondary.TaskRecord{}
	var (
		desc, dependsOn, blockedReason, assignedTo sql.NullString

		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, description, status, depends_on_task_id, blocked_reason, assigned_to, created_at, updated_at FROM tasks WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.Title, &desc, &record.Status, &dependsOn, &blockedReason, &assignedTo, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	record.Description = desc.String
	record.DependsOnTaskID = dependsOn.String
	record.BlockedReason = blockedReason.String
	record.AssignedTo = assignedTo.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists task edits including status changes.
func (r *TaskRepository) Update(ctx context.Context, task *secondary.TaskRecord) error {
	var desc, blockedReason, assignedTo sql.NullString
	if task.Description != "" {
		desc = sql.NullString{String: task.Description, Valid: true}
	}
	if task.BlockedReason != "" {
		blockedReason = sql.NullString{String: task.BlockedReason, Valid: true}
	}
	if task.AssignedTo != "" {
		assignedTo = sql.NullString{String: task.AssignedTo, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, status = ?, blocked_reason = ?, assigned_to = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		task.Title, desc, task.Status, blockedReason, assignedTo, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("task %s: %w", task.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a task. Dependents keep running; their depends_on_task_id
// is nulled by the foreign key.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the tasks of one project, newest first.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, title, description, status, depends_on_task_id, blocked_reason, assigned_to, created_at, updated_at FROM tasks WHERE project_id = ? ORDER BY created_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		record := &secondary.TaskRecord{}
		var (
			desc, dependsOn, blockedReason, assignedTo sql.NullString

			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Title, &desc, &record.Status, &dependsOn, &blockedReason, &assignedTo, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		record.Description = desc.String
		record.DependsOnTaskID = dependsOn.String
		record.BlockedReason = blockedReason.String
		record.AssignedTo = assignedTo.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		tasks = append(tasks, record)
	}

	return tasks, rows.Err()
}
