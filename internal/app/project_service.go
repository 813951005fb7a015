package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface. Lifecycle
// state is never written here; that path is the LifecycleService.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
	appRepo     secondary.AppRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(projectRepo secondary.ProjectRepository, appRepo secondary.AppRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		appRepo:     appRepo,
	}
}

// CreateProject creates a new project in the initial lifecycle state.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}

	// Verify the owning app exists before inserting.
	if _, err := s.appRepo.GetByID(ctx, req.AppID); err != nil {
		return nil, err
	}

	record := &secondary.ProjectRecord{
		ID:           uuid.NewString(),
		AppID:        req.AppID,
		Name:         req.Name,
		Description:  req.Description,
		CurrentState: string(state.StatePlanning),
	}
	if err := s.projectRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.GetProject(ctx, record.ID)
}

// GetProject retrieves a project by ID.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(record), nil
}

// UpdateProject updates a project's name and description.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) (*primary.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}

	record, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	record.Name = req.Name
	record.Description = req.Description

	if err := s.projectRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetProject(ctx, req.ProjectID)
}

// DeleteProject removes a project and cascades to its dependent entities.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	return s.projectRepo.Delete(ctx, projectID)
}

// ListProjects retrieves projects matching the given filters.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	if filters.State != "" && !state.IsValid(state.State(filters.State)) {
		return nil, fmt.Errorf("%w: unknown state filter %q", ErrInvalidInput, filters.State)
	}

	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{
		AppID: filters.AppID,
		State: filters.State,
		Limit: filters.Limit,
	})
	if err != nil {
		return nil, err
	}

	projects := make([]*primary.Project, len(records))
	for i, record := range records {
		projects[i] = recordToProject(record)
	}
	return projects, nil
}

// GetStats aggregates the dependent-entity counts for one project.
func (s *ProjectServiceImpl) GetStats(ctx context.Context, projectID string) (*primary.ProjectStats, error) {
	// Surface ErrNotFound for missing projects before counting.
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	stats, err := s.projectRepo.Stats(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &primary.ProjectStats{
		ProjectID:          projectID,
		ArtifactCount:      stats.ArtifactCount,
		TopicCount:         stats.TopicCount,
		ResolvedTopicCount: stats.ResolvedTopicCount,
		ADRCount:           stats.ADRCount,
		AcceptedADRCount:   stats.AcceptedADRCount,
		TaskCount:          stats.TaskCount,
		DoneTaskCount:      stats.DoneTaskCount,
		TestCount:          stats.TestCount,
		PassedTestCount:    stats.PassedTestCount,
		RiskCount:          stats.RiskCount,
		HighRiskCount:      stats.HighRiskCount,
	}, nil
}

func recordToProject(record *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:           record.ID,
		AppID:        record.AppID,
		Name:         record.Name,
		Description:  record.Description,
		CurrentState: record.CurrentState,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
