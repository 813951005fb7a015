package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/bpos/internal/ports/secondary"
)

// AppRepository implements secondary.AppRepository with SQLite.
type AppRepository struct {
	db *sql.DB
}

// NewAppRepository creates a new SQLite app repository.
func NewAppRepository(db *sql.DB) *AppRepository {
	return &AppRepository{db: db}
}

// Create persists a new app.
func (r *AppRepository) Create(ctx context.Context, app *secondary.AppRecord) error {
	if app.ID == "" {
		return fmt.Errorf("app ID must be pre-populated by service layer")
	}

	var desc sql.NullString
	if app.Description != "" {
		desc = sql.NullString{String: app.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO apps (id, name, description) VALUES (?, ?, ?)",
		app.ID, app.Name, desc,
	)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	return nil
}

// GetByID retrieves an app by its ID.
func (r *AppRepository) GetByID(ctx context.Context, id string) (*secondary.AppRecord, error) {
	record := &secondary.AppRecord{}
	var (
		desc      sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at, updated_at FROM apps WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &desc, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("app %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Update persists app edits.
func (r *AppRepository) Update(ctx context.Context, app *secondary.AppRecord) error {
	var desc sql.NullString
	if app.Description != "" {
		desc = sql.NullString{String: app.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE apps SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		app.Name, desc, app.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update app: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("app %s: %w", app.ID, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes an app and cascades to its projects.
func (r *AppRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM apps WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("app %s: %w", id, secondary.ErrNotFound)
	}
	return nil
}

// List retrieves all apps, newest first.
func (r *AppRepository) List(ctx context.Context) ([]*secondary.AppRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, created_at, updated_at FROM apps ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	defer rows.Close()

	var apps []*secondary.AppRecord
	for rows.Next() {
		record := &secondary.AppRecord{}
		var (
			desc      sql.NullString
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.Name, &desc, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan app: %w", err)
		}
		record.Description = desc.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)
		apps = append(apps, record)
	}

	return apps, rows.Err()
}
