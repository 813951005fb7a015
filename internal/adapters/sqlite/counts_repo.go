package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CountsRepository implements secondary.GateCountReader with SQLite.
// All queries are plain COUNTs; two concurrent evaluations during a write
// may observe different counts, which is fine because the authoritative
// check is the conditional update in ApplyTransition.
type CountsRepository struct {
	db *sql.DB
}

// NewCountsRepository creates a new SQLite gate-count reader.
func NewCountsRepository(db *sql.DB) *CountsRepository {
	return &CountsRepository{db: db}
}

// CountArtifactsByType counts a project's artifacts of one type.
func (r *CountsRepository) CountArtifactsByType(ctx context.Context, projectID, artifactType string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM artifacts WHERE project_id = ? AND artifact_type = ?", projectID, artifactType)
}

// CountTopicsByStatus counts a project's topics with one status.
func (r *CountsRepository) CountTopicsByStatus(ctx context.Context, projectID, status string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM topics WHERE project_id = ? AND status = ?", projectID, status)
}

// CountADRsByStatuses counts a project's ADRs with any of the statuses.
func (r *CountsRepository) CountADRsByStatuses(ctx context.Context, projectID string, statuses []string) (int, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	placeholders := strings.Repeat("?, ", len(statuses)-1) + "?"
	args := []any{projectID}
	for _, s := range statuses {
		args = append(args, s)
	}
	return r.count(ctx, "SELECT COUNT(*) FROM adrs WHERE project_id = ? AND status IN ("+placeholders+")", args...)
}

// CountTasksByStatus counts a project's tasks with one status.
func (r *CountsRepository) CountTasksByStatus(ctx context.Context, projectID, status string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM tasks WHERE project_id = ? AND status = ?", projectID, status)
}

// CountTestsByStatus counts a project's test records with one status.
func (r *CountsRepository) CountTestsByStatus(ctx context.Context, projectID, status string) (int, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM tests WHERE project_id = ? AND status = ?", projectID, status)
}

func (r *CountsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count gate entities: %w", err)
	}
	return n, nil
}
