package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// ArtifactRepository implements secondary.ArtifactRepository with SQLite.
type ArtifactRepository struct {
	db *sql.DB
}

// NewArtifactRepository creates a new SQLite artifact repository.
func NewArtifactRepository(db *sql.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

// Create persists a new artifact.
func (r *ArtifactRepository) Create(ctx context.Context, artifact *secondary.ArtifactRecord) error {
	if artifact.ID == "" {
		return fmt.Errorf("artifact ID must be pre-populated by service layer")
	}

	var content sql.NullString
	if artifact.Content != "" {
		content = sql.NullString{String: artifact.Content, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO artifacts (id, project_id, artifact_type, title, content, ai_generated) VALUES (?, ?, ?, ?, ?, ?)",
		artifact.ID, artifact.ProjectID, artifact.ArtifactType, artifact.Title, content, artifact.AIGenerated,
	)
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	return nil
}

// GetByID retrieves an artifact by its ID.
func (r *ArtifactRepository) GetByID(ctx context.Context, id string) (*secondary.ArtifactRecord, error) {
	record := &secondary.ArtifactRecord{}
	var (
		content   sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, artifact_type, title, content, ai_generated, created_at, updated_at FROM artifacts WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.ArtifactType, &record.Title, &content, &record.AIGenerated, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("artifact %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	record.Content = content.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists artifact edits (title, content).
func (r *ArtifactRepository) Update(ctx context.Context, artifact *secondary.ArtifactRecord) error {
	var content sql.NullString
	if artifact.Content != "" {
		content = sql.NullString{String: artifact.Content, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE artifacts SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		artifact.Title, content, artifact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update artifact: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("artifact %s: %w", artifact.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes an artifact.
func (r *ArtifactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM artifacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("artifact %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the artifacts of one project, newest first.
func (r *ArtifactRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.ArtifactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, artifact_type, title, content, ai_generated, created_at, updated_at FROM artifacts WHERE project_id = ? ORDER BY created_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*secondary.ArtifactRecord
	for rows.Next() {
		record := &secondary.ArtifactRecord{}
		var (
			content   sql.NullString
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.ArtifactType, &record.Title, &content, &record.AIGenerated, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		record.Content = content.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		artifacts = append(artifacts, record)
	}

	return artifacts, rows.Err()
}
