package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// Artifact types accepted by the persistence layer.
var validArtifactTypes = map[string]bool{
	"prd":                  true,
	"technical_spec":       true,
	"architecture_diagram": true,
	"user_stories":         true,
	"wireframes":           true,
	"api_spec":             true,
	"other":                true,
}

// ArtifactServiceImpl implements the ArtifactService interface.
type ArtifactServiceImpl struct {
	artifactRepo secondary.ArtifactRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewArtifactService creates a new ArtifactService with injected dependencies.
func NewArtifactService(artifactRepo secondary.ArtifactRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *ArtifactServiceImpl {
	return &ArtifactServiceImpl{
		artifactRepo: artifactRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateArtifact creates a new artifact and logs the event.
func (s *ArtifactServiceImpl) CreateArtifact(ctx context.Context, req primary.CreateArtifactRequest) (*primary.Artifact, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: artifact title is required", ErrInvalidInput)
	}
	if !validArtifactTypes[req.ArtifactType] {
		return nil, fmt.Errorf("%w: unknown artifact type %q", ErrInvalidInput, req.ArtifactType)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	record := &secondary.ArtifactRecord{
		ID:           uuid.NewString(),
		ProjectID:    req.ProjectID,
		ArtifactType: req.ArtifactType,
		Title:        req.Title,
		Content:      req.Content,
		AIGenerated:  req.AIGenerated,
	}
	if err := s.artifactRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "artifact", record.ID,
		fmt.Sprintf("Artifact %q (%s) created", req.Title, req.ArtifactType)); err != nil {
		return nil, err
	}

	return s.GetArtifact(ctx, record.ID)
}

// GetArtifact retrieves an artifact by ID.
func (s *ArtifactServiceImpl) GetArtifact(ctx context.Context, artifactID string) (*primary.Artifact, error) {
	record, err := s.artifactRepo.GetByID(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	return recordToArtifact(record), nil
}

// UpdateArtifact updates an artifact's title and content.
func (s *ArtifactServiceImpl) UpdateArtifact(ctx context.Context, req primary.UpdateArtifactRequest) (*primary.Artifact, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: artifact title is required", ErrInvalidInput)
	}

	record, err := s.artifactRepo.GetByID(ctx, req.ArtifactID)
	if err != nil {
		return nil, err
	}
	record.Title = req.Title
	record.Content = req.Content

	if err := s.artifactRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetArtifact(ctx, req.ArtifactID)
}

// DeleteArtifact removes an artifact.
func (s *ArtifactServiceImpl) DeleteArtifact(ctx context.Context, artifactID string) error {
	return s.artifactRepo.Delete(ctx, artifactID)
}

// ListArtifacts retrieves the artifacts of one project.
func (s *ArtifactServiceImpl) ListArtifacts(ctx context.Context, projectID string) ([]*primary.Artifact, error) {
	records, err := s.artifactRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	artifacts := make([]*primary.Artifact, len(records))
	for i, record := range records {
		artifacts[i] = recordToArtifact(record)
	}
	return artifacts, nil
}

func recordToArtifact(record *secondary.ArtifactRecord) *primary.Artifact {
	return &primary.Artifact{
		ID:           record.ID,
		ProjectID:    record.ProjectID,
		ArtifactType: record.ArtifactType,
		Title:        record.Title,
		Content:      record.Content,
		AIGenerated:  record.AIGenerated,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
