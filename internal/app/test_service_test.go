package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

func newTestServiceFixture(t *testing.T) (*TestServiceImpl, *mockTestRepository) {
	t.Helper()
	projectRepo := newMockProjectRepository()
	seedMockProject(projectRepo, "proj-1", "testing")
	testRepo := newMockTestRepository()
	return NewTestService(testRepo, projectRepo, &mockActivityRepository{}), testRepo
}

func TestTestService_CreateTest(t *testing.T) {
	svc, _ := newTestServiceFixture(t)

	created, err := svc.CreateTest(context.Background(), primary.CreateTestRequest{
		ProjectID:      "proj-1",
		TestType:       "integration",
		Title:          "Checkout flow end to end",
		ExpectedResult: "order persisted and receipt emailed",
	})
	if err != nil {
		t.Fatalf("CreateTest failed: %v", err)
	}
	if created.Status != "pending" {
		t.Errorf("expected initial status 'pending', got '%s'", created.Status)
	}
}

func TestTestService_CreateTest_UnknownType(t *testing.T) {
	svc, _ := newTestServiceFixture(t)

	_, err := svc.CreateTest(context.Background(), primary.CreateTestRequest{
		ProjectID: "proj-1",
		TestType:  "smoke",
		Title:     "T",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTestService_RecordResult(t *testing.T) {
	svc, testRepo := newTestServiceFixture(t)
	testRepo.tests["test-1"] = &secondary.TestRecord{
		ID: "test-1", ProjectID: "proj-1", TestType: "unit", Title: "T", Status: "pending",
	}

	updated, err := svc.RecordResult(context.Background(), primary.RecordTestResultRequest{
		TestID:       "test-1",
		Status:       "passed",
		ActualResult: "all assertions held",
	})
	if err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}
	if updated.Status != "passed" {
		t.Errorf("expected status 'passed', got '%s'", updated.Status)
	}
	if updated.ExecutedAt == "" {
		t.Error("expected executed_at stamped on result")
	}
}

func TestTestService_RecordResult_RejectsPending(t *testing.T) {
	svc, testRepo := newTestServiceFixture(t)
	testRepo.tests["test-1"] = &secondary.TestRecord{
		ID: "test-1", ProjectID: "proj-1", TestType: "unit", Title: "T", Status: "pending",
	}

	_, err := svc.RecordResult(context.Background(), primary.RecordTestResultRequest{
		TestID: "test-1",
		Status: "pending",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
