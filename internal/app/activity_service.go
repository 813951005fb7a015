package app

import (
	"context"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// defaultActivityPageSize bounds unpaged activity reads.
const defaultActivityPageSize = 50

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityLogRepository
	projectRepo  secondary.ProjectRepository
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activityRepo secondary.ActivityLogRepository, projectRepo secondary.ProjectRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		projectRepo:  projectRepo,
	}
}

// ListActivity returns the newest audit entries for a project.
func (s *ActivityServiceImpl) ListActivity(ctx context.Context, projectID string, limit int) ([]*primary.ActivityEntry, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultActivityPageSize
	}

	records, err := s.activityRepo.ListByProject(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, record := range records {
		entries[i] = &primary.ActivityEntry{
			ID:             record.ID,
			ProjectID:      record.ProjectID,
			ActorID:        record.ActorID,
			EventType:      record.EventType,
			EntityType:     record.EntityType,
			EntityID:       record.EntityID,
			Description:    record.Description,
			PreviousState:  record.PreviousState,
			NewState:       record.NewState,
			Severity:       record.Severity,
			IsRollback:     record.IsRollback,
			RollbackReason: record.RollbackReason,
			Forced:         record.Forced,
			CreatedAt:      record.CreatedAt,
		}
	}
	return entries, nil
}
