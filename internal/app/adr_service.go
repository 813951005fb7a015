package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// ADR statuses accepted by the persistence layer.
var validADRStatuses = map[string]bool{
	"draft":      true,
	"proposed":   true,
	"accepted":   true,
	"locked":     true,
	"deprecated": true,
	"superseded": true,
}

// ADRServiceImpl implements the ADRService interface.
type ADRServiceImpl struct {
	adrRepo      secondary.ADRRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewADRService creates a new ADRService with injected dependencies.
func NewADRService(adrRepo secondary.ADRRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *ADRServiceImpl {
	return &ADRServiceImpl{
		adrRepo:      adrRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateADR creates a new architecture decision record in draft status.
func (s *ADRServiceImpl) CreateADR(ctx context.Context, req primary.CreateADRRequest) (*primary.ADR, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: ADR title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Decision) == "" {
		return nil, fmt.Errorf("%w: ADR decision is required", ErrInvalidInput)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	record := &secondary.ADRRecord{
		ID:           uuid.NewString(),
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Context:      req.Context,
		Decision:     req.Decision,
		Consequences: req.Consequences,
		Status:       "draft",
	}
	if err := s.adrRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create ADR: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "adr", record.ID,
		fmt.Sprintf("ADR %q created", req.Title)); err != nil {
		return nil, err
	}

	return s.GetADR(ctx, record.ID)
}

// GetADR retrieves an ADR by ID.
func (s *ADRServiceImpl) GetADR(ctx context.Context, adrID string) (*primary.ADR, error) {
	record, err := s.adrRepo.GetByID(ctx, adrID)
	if err != nil {
		return nil, err
	}
	return recordToADR(record), nil
}

// UpdateADR updates an ADR. Moving status to locked stamps locked_at; a
// locked ADR's decision text can no longer change.
func (s *ADRServiceImpl) UpdateADR(ctx context.Context, req primary.UpdateADRRequest) (*primary.ADR, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: ADR title is required", ErrInvalidInput)
	}
	if !validADRStatuses[req.Status] {
		return nil, fmt.Errorf("%w: unknown ADR status %q", ErrInvalidInput, req.Status)
	}

	record, err := s.adrRepo.GetByID(ctx, req.ADRID)
	if err != nil {
		return nil, err
	}
	if record.Status == "locked" && req.Decision != record.Decision {
		return nil, fmt.Errorf("%w: a locked ADR's decision cannot change", ErrInvalidInput)
	}

	record.Title = req.Title
	record.Context = req.Context
	record.Decision = req.Decision
	record.Consequences = req.Consequences

	if req.Status == "locked" && record.Status != "locked" {
		record.LockedAt = time.Now().UTC().Format(time.RFC3339)
	}
	record.Status = req.Status

	if err := s.adrRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetADR(ctx, req.ADRID)
}

// DeleteADR removes an ADR.
func (s *ADRServiceImpl) DeleteADR(ctx context.Context, adrID string) error {
	return s.adrRepo.Delete(ctx, adrID)
}

// ListADRs retrieves the ADRs of one project.
func (s *ADRServiceImpl) ListADRs(ctx context.Context, projectID string) ([]*primary.ADR, error) {
	records, err := s.adrRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	adrs := make([]*primary.ADR, len(records))
	for i, record := range records {
		adrs[i] = recordToADR(record)
	}
	return adrs, nil
}

func recordToADR(record *secondary.ADRRecord) *primary.ADR {
	return &primary.ADR{
		ID:           record.ID,
		ProjectID:    record.ProjectID,
		Title:        record.Title,
		Context:      record.Context,
		Decision:     record.Decision,
		Consequences: record.Consequences,
		Status:       record.Status,
		LockedAt:     record.LockedAt,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
