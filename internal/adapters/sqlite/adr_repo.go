package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// ADRRepository implements secondary.ADRRepository with SQLite.
type ADRRepository struct {
	db *sql.DB
}

// NewADRRepository creates a new SQLite ADR repository.
func NewADRRepository(db *sql.DB) *ADRRepository {
	return &ADRRepository{db: db}
}

// Create persists a new ADR.
func (r *ADRRepository) Create(ctx context.Context, adr *secondary.ADRRecord) error {
	if adr.ID == "" {
		return fmt.Errorf("adr ID must be pre-populated by service layer")
	}
	if adr.Status == "" {
		return fmt.Errorf("adr Status must be pre-populated by service layer")
	}

	var consequences sql.NullString
	if adr.Consequences != "" {
		consequences = sql.NullString{String: adr.Consequences, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO adrs (id, project_id, title, context, decision, consequences, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		adr.ID, adr.ProjectID, adr.Title, adr.Context, adr.Decision, consequences, adr.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create adr: %w", err)
	}
	return nil
}

// GetByID retrieves an ADR by its ID.
func (r *ADRRepository) GetByID(ctx context.Context, id string) (*secondary.ADRRecord, error) {
	record := &secondary.ADRRecord{}
	var (
		consequences sql.NullString
		lockedAt     sql.NullTime
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, context, decision, consequences, status, locked_at, created_at, updated_at FROM adrs WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.Title, &record.Context, &record.Decision, &consequences, &record.Status, &lockedAt, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("adr %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get adr: %w", err)
	}

	record.Consequences = consequences.String
	if lockedAt.Valid {
		record.LockedAt = lockedAt.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists ADR edits including status and locked_at.
func (r *ADRRepository) Update(ctx context.Context, adr *secondary.ADRRecord) error {
	var consequences, lockedAt sql.NullString
	if adr.Consequences != "" {
		consequences = sql.NullString{String: adr.Consequences, Valid: true}
	}
	if adr.LockedAt != "" {
		lockedAt = sql.NullString{String: adr.LockedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE adrs SET title = ?, context = ?, decision = ?, consequences = ?, status = ?, locked_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		adr.Title, adr.Context, adr.Decision, consequences, adr.Status, lockedAt, adr.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update adr: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("adr %s: %w", adr.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes an ADR.
func (r *ADRRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM adrs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete adr: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("adr %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the ADRs of one project, newest first.
func (r *ADRRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.ADRRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, title, context, decision, consequences, status, locked_at, created_at, updated_at FROM adrs WHERE project_id = ? ORDER BY created_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list adrs: %w", err)
	}
	defer rows.Close()

	var adrs []*secondary.ADRRecord
	for rows.Next() {
		record := &secondary.ADRRecord{}
		var (
			consequences sql.NullString
			lockedAt     sql.NullTime
			createdAt    time.Time
			updatedAt    time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Title, &record.Context, &record.Decision, &consequences, &record.Status, &lockedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adr: %w", err)
		}
		record.Consequences = consequences.String
		if lockedAt.Valid {
			record.LockedAt = lockedAt.Time.Format(time.RFC3339)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		adrs = append(adrs, record)
	}

	return adrs, rows.Err()
}
