package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// TopicRepository implements secondary.TopicRepository with SQLite.
type TopicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new SQLite topic repository.
func NewTopicRepository(db *sql.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create persists a new research topic.
func (r *TopicRepository) Create(ctx context.Context, topic *secondary.TopicRecord) error {
	if topic.ID == "" {
		return fmt.Errorf("topic ID must be pre-populated by service layer")
	}
	if topic.Status == "" {
		return fmt.Errorf("topic Status must be pre-populated by service layer")
	}

	var notes sql.NullString
	if topic.ResearchNotes != "" {
		notes = sql.NullString{String: topic.ResearchNotes, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO topics (id, project_id, title, question, research_notes, status) VALUES (?, ?, ?, ?, ?, ?)",
		topic.ID, topic.ProjectID, topic.Title, topic.Question, notes, topic.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// GetByID retrieves a topic by its ID.
func (r *TopicRepository) GetByID(ctx context.Context, id string) (*secondary.TopicRecord, error) {
	record := &secondary.TopicRecord{}
	var (
		notes      sql.NullString
		resolvedAt sql.NullTime
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, question, research_notes, status, resolved_at, created_at, updated_at FROM topics WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.Title, &record.Question, &notes, &record.Status, &resolvedAt, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("topic %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	record.ResearchNotes = notes.String
	if resolvedAt.Valid {
		record.ResolvedAt = resolvedAt.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists topic edits including status and resolved_at.
func (r *TopicRepository) Update(ctx context.Context, topic *secondary.TopicRecord) error {
	var notes, resolvedAt sql.NullString
	if topic.ResearchNotes != "" {
		notes = sql.NullString{String: topic.ResearchNotes, Valid: true}
	}
	if topic.ResolvedAt != "" {
		resolvedAt = sql.NullString{String: topic.ResolvedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE topics SET title = ?, question = ?, research_notes = ?, status = ?, resolved_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		topic.Title, topic.Question, notes, topic.Status, resolvedAt, topic.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("topic %s: %w", topic.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a topic.
func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM topics WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("topic %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the topics of one project, newest first.
func (r *TopicRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TopicRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, title, question, research_notes, status, resolved_at, created_at, updated_at FROM topics WHERE project_id = ? ORDER BY created_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []*secondary.TopicRecord
	for rows.Next() {
		record := &secondary.TopicRecord{}
		var (
			notes      sql.NullString
			resolvedAt sql.NullTime
			createdAt  time.Time
			updatedAt  time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Title, &record.Question, &notes, &record.Status, &resolvedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		record.ResearchNotes = notes.String
		if resolvedAt.Valid {
			record.ResolvedAt = resolvedAt.Time.Format(time.RFC3339)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		topics = append(topics, record)
	}

	return topics, rows.Err()
}
