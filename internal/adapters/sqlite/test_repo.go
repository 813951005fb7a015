package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// TestRepository implements secondary.TestRepository with SQLite.
type TestRepository struct {
	db *sql.DB
}

// NewTestRepository creates a new SQLite test-record repository.
func NewTestRepository(db *sql.DB) *TestRepository {
	return &TestRepository{db: db}
}

// Create persists a new test record.
func (r *TestRepository) Create(ctx context.Context, test *secondary.TestRecord) error {
	if test.ID == "" {
		return fmt.Errorf("test ID must be pre-populated by service layer")
	}
	if test.Status == "" {
		return fmt.Errorf("test Status must be pre-populated by service layer")
	}

	var desc, expected sql.NullString
	if test.Description != "" {
		desc = sql.NullString{String: test.Description, Valid: true}
	}
	if test.ExpectedResult != "" {
		expected = sql.NullString{String: test.ExpectedResult, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tests (id, project_id, test_type, title, description, expected_result, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		test.ID, test.ProjectID, test.TestType, test.Title, desc, expected, test.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create test: %w", err)
	}
	return nil
}

// GetByID retrieves a test record by its ID.
func (r *TestRepository) GetByID(ctx context.Context, id string) (*secondary.TestRecord, error) {
	record := &secondary.TestRecord{}
	var (
		desc, expected, actual sql.NullString
		executedAt             sql.NullTime
		createdAt              time.Time
		updatedAt              time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, project_id, test_type, title, description, expected_result, actual_result, status, executed_at, created_at, updated_at FROM tests WHERE id = ?",
		id,
	).Scan(&record.ID, &record.ProjectID, &record.TestType, &record.Title, &desc, &expected, &actual, &record.Status, &executedAt, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("test %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	record.Description = desc.String
	record.ExpectedResult = expected.String
	record.ActualResult = actual.String
	if executedAt.Valid {
		record.ExecutedAt = executedAt.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists test edits including results and executed_at.
func (r *TestRepository) Update(ctx context.Context, test *secondary.TestRecord) error {
	var desc, expected, actual, executedAt sql.NullString
	if test.Description != "" {
		desc = sql.NullString{String: test.Description, Valid: true}
	}
	if test.ExpectedResult != "" {
		expected = sql.NullString{String: test.ExpectedResult, Valid: true}
	}
	if test.ActualResult != "" {
		actual = sql.NullString{String: test.ActualResult, Valid: true}
	}
	if test.ExecutedAt != "" {
		executedAt = sql.NullString{String: test.ExecutedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE tests SET title = ?, description = ?, expected_result = ?, actual_result = ?, status = ?, executed_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		test.Title, desc, expected, actual, test.Status, executedAt, test.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update test: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("test %s: %w", test.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a test record.
func (r *TestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete test: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("test %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// ListByProject retrieves the test records of one project, newest first.
func (r *TestRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TestRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, test_type, title, description, expected_result, actual_result, status, executed_at, created_at, updated_at FROM tests WHERE project_id = ? ORDER BY created_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	defer rows.Close()

	var tests []*secondary.TestRecord
	for rows.Next() {
		record := &secondary.TestRecord{}
		var (
			desc, expected, actual sql.NullString
			executedAt             sql.NullTime
			createdAt              time.Time
			updatedAt              time.Time
		)
		if err := rows.Scan(&record.ID, &record.ProjectID, &record.TestType, &record.Title, &desc, &expected, &actual, &record.Status, &executedAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan test: %w", err)
		}
		record.Description = desc.String
		record.ExpectedResult = expected.String
		record.ActualResult = actual.String
		if executedAt.Valid {
			record.ExecutedAt = executedAt.Time.Format(time.RFC3339)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		tests = append(tests, record)
	}

	return tests, rows.Err()
}
