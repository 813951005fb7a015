package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// RiskRepository implements secondary.RiskRepository with SQLite.
type RiskRepository struct {
	db *sql.DB
}

// NewRiskRepository creates a new SQLite risk repository.
func NewRiskRepository(db *sql.DB) *RiskRepository {
	return &RiskRepository{db: db}
}

// Create persists a new risk.
func (r *RiskRepository) Create(ctx context.Context, risk *secondary.RiskRecord) error {
	if risk.ID == "" {
		return fmt.Errorf("risk ID must be pre-populated by service layer")
	}
	if risk.Level == "" {
		return fmt.Errorf("risk Level must be pre-populated by service layer")
	}

	var desc, mitigation sql.NullString
	if risk.Description != "" {
		desc = sql.NullString{String: risk.Description, Valid: true}
	}
	if risk.Mitigation != "" {
		mitigation = sql.NullString{String: risk.Mitigation, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO risks (id, project_id, title, description, level, mitigation) VALUES (?, ?, ?, ?, ?, ?)",
		risk.ID, risk.ProjectID, risk.Title, desc, risk.Level, mitigation,
	)
	if err != nil {
		return fmt.Errorf("failed to create risk: %w", err)
	}
	return nil
}

// GetByID retrieves a risk by its ID.
func (r *RiskRepository) GetByID(ctx context.Context, id string) (*secondary.RiskRecord, error) {
	record := &secondary.RiskRecord{}
	var (
		desc, mitigation sql.NullString
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, description, level, mitigation, created_at, updated_at FROM risks WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.Title, &desc, &record.Level, &mitigation, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("risk %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get risk: %w", err)
	}

	record.Description = desc.String
	record.Mitigation = mitigation.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists risk edits.
func (r *RiskRepository) Update(ctx context.Context, risk *secondary.RiskRecord) error {
	var desc, mitigation sql.NullString
	if risk.Description != "" {
		desc = sql.NullString{String: risk.Description, Valid: true}
	}
	if risk.Mitigation != "" {
		mitigation = sql.NullString{String: risk.Mitigation, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE risks SET title = ?, description = ?, level = ?, mitigation = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		risk.Title, desc, risk.Level, mitigation, risk.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update risk: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("risk %s: %w", risk.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a risk.
func (r *RiskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM risks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete risk: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("risk %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the risks of one project, highest level first.
func (r *RiskRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.RiskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, description, level, mitigation, created_at, updated_at FROM risks
		 WHERE project_id = ?
		 ORDER BY CASE level WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list risks: %w", err)
	}
	defer rows.Close()

	var risks []*secondary.RiskRecord
	for rows.Next() {
		record := &secondary.RiskRecord{}
		var (
			desc, mitigation sql.NullString
			createdAt        time.Time
			updatedAt        time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.Title, &desc, &record.Level, &mitigation, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan risk: %w", err)
		}
		record.Description = desc.String
		record.Mitigation = mitigation.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		risks = append(risks, record)
	}

	return risks, rows.Err()
}
