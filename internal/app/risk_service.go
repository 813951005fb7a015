package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// Risk levels accepted by the persistence layer.
var validRiskLevels = map[string]bool{
	"low":      true,
	"medium":   true,
	"high":     true,
	"critical": true,
}

// RiskServiceImpl implements the RiskService interface. Risks are tracked
// per project but never feed gate evaluation.
type RiskServiceImpl struct {
	riskRepo     secondary.RiskRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewRiskService creates a new RiskService with injected dependencies.
func NewRiskService(riskRepo secondary.RiskRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *RiskServiceImpl {
	return &RiskServiceImpl{
		riskRepo:     riskRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateRisk creates a new risk.
func (s *RiskServiceImpl) CreateRisk(ctx context.Context, req primary.CreateRiskRequest) (*primary.Risk, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: risk title is required", ErrInvalidInput)
	}
	level := req.Level
	if level == "" {
		level = "medium"
	}
	if !validRiskLevels[level] {
		return nil, fmt.Errorf("%w: unknown risk level %q", ErrInvalidInput, level)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	record := &secondary.RiskRecord{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Level:       level,
		Mitigation:  req.Mitigation,
	}
	if err := s.riskRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create risk: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "risk", record.ID,
		fmt.Sprintf("Risk %q (%s) created", req.Title, level)); err != nil {
		return nil, err
	}

	return s.GetRisk(ctx, record.ID)
}

// GetRisk retrieves a risk by ID.
func (s *RiskServiceImpl) GetRisk(ctx context.Context, riskID string) (*primary.Risk, error) {
	record, err := s.riskRepo.GetByID(ctx, riskID)
	if err != nil {
		return nil, err
	}
	return recordToRisk(record), nil
}

// UpdateRisk updates a risk's editable fields.
func (s *RiskServiceImpl) UpdateRisk(ctx context.Context, req primary.UpdateRiskRequest) (*primary.Risk, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: risk title is required", ErrInvalidInput)
	}
	if !validRiskLevels[req.Level] {
		return nil, fmt.Errorf("%w: unknown risk level %q", ErrInvalidInput, req.Level)
	}

	record, err := s.riskRepo.GetByID(ctx, req.RiskID)
	if err != nil {
		return nil, err
	}
	record.Title = req.Title
	record.Description = req.Description
	record.Level = req.Level
	record.Mitigation = req.Mitigation

	if err := s.riskRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetRisk(ctx, req.RiskID)
}

// DeleteRisk removes a risk.
func (s *RiskServiceImpl) DeleteRisk(ctx context.Context, riskID string) error {
	return s.riskRepo.Delete(ctx, riskID)
}

// ListRisks retrieves the risks of one project, most severe first.
func (s *RiskServiceImpl) ListRisks(ctx context.Context, projectID string) ([]*primary.Risk, error) {
	records, err := s.riskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	risks := make([]*primary.Risk, len(records))
	for i, record := range records {
		risks[i] = recordToRisk(record)
	}
	return risks, nil
}

func recordToRisk(record *secondary.RiskRecord) *primary.Risk {
	return &primary.Risk{
		ID:          record.ID,
		ProjectID:   record.ProjectID,
		Title:       record.Title,
		Description: record.Description,
		Level:       record.Level,
		Mitigation:  record.Mitigation,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
