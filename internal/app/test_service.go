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

// Test types accepted by the persistence layer.
var validTestTypes = map[string]bool{
	"unit":        true,
	"integration": true,
	"e2e":         true,
	"manual":      true,
}

// TestServiceImpl implements the TestService interface.
type TestServiceImpl struct {
	testRepo     secondary.TestRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewTestService creates a new TestService with injected dependencies.
func NewTestService(testRepo secondary.TestRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *TestServiceImpl {
	return &TestServiceImpl{
		testRepo:     testRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateTest creates a new test record in pending status.
func (s *TestServiceImpl) CreateTest(ctx context.Context, req primary.CreateTestRequest) (*primary.Test, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: test title is required", ErrInvalidInput)
	}
	if !validTestTypes[req.TestType] {
		return nil, fmt.Errorf("%w: unknown test type %q", ErrInvalidInput, req.TestType)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	record := &secondary.TestRecord{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		TestType:       req.TestType,
		Title:          req.Title,
		Description:    req.Description,
		ExpectedResult: req.ExpectedResult,
		Status:         "pending",
	}
	if err := s.testRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "test", record.ID,
		fmt.Sprintf("Test %q (%s) created", req.Title, req.TestType)); err != nil {
		return nil, err
	}

	return s.GetTest(ctx, record.ID)
}

// GetTest retrieves a test record by ID.
func (s *TestServiceImpl) GetTest(ctx context.Context, testID string) (*primary.Test, error) {
	record, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	return recordToTest(record), nil
}

// UpdateTest updates a test record's descriptive fields.
func (s *TestServiceImpl) UpdateTest(ctx context.Context, req primary.UpdateTestRequest) (*primary.Test, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: test title is required", ErrInvalidInput)
	}

	record, err := s.testRepo.GetByID(ctx, req.TestID)
	if err != nil {
		return nil, err
	}
	record.Title = req.Title
	record.Description = req.Description
	record.ExpectedResult = req.ExpectedResult

	if err := s.testRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetTest(ctx, req.TestID)
}

// RecordResult sets a pass/fail outcome and stamps executed_at.
func (s *TestServiceImpl) RecordResult(ctx context.Context, req primary.RecordTestResultRequest) (*primary.Test, error) {
	if req.Status != "passed" && req.Status != "failed" {
		return nil, fmt.Errorf("%w: result status must be passed or failed, got %q", ErrInvalidInput, req.Status)
	}

	record, err := s.testRepo.GetByID(ctx, req.TestID)
	if err != nil {
		return nil, err
	}
	record.Status = req.Status
	record.ActualResult = req.ActualResult
	record.ExecutedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.testRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetTest(ctx, req.TestID)
}

// DeleteTest removes a test record.
func (s *TestServiceImpl) DeleteTest(ctx context.Context, testID string) error {
	return s.testRepo.Delete(ctx, testID)
}

// ListTests retrieves the test records of one project.
func (s *TestServiceImpl) ListTests(ctx context.Context, projectID string) ([]*primary.Test, error) {
	records, err := s.testRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tests := make([]*primary.Test, len(records))
	for i, record := range records {
		tests[i] = recordToTest(record)
	}
	return tests, nil
}

func recordToTest(record *secondary.TestRecord) *primary.Test {
	return &primary.Test{
		ID:             record.ID,
		ProjectID:      record.ProjectID,
		TestType:       record.TestType,
		Title:          record.Title,
		Description:    record.Description,
		ExpectedResult: record.ExpectedResult,
		ActualResult:   record.ActualResult,
		Status:         record.Status,
		ExecutedAt:     record.ExecutedAt,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
