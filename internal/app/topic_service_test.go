package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/bpos/internal/ports/primary"
)

func TestTopicService_CreateTopic(t *testing.T) {
	projectRepo := newMockProjectRepository()
	seedMockProject(projectRepo, "proj-1", "research")
	topicRepo := newMockTopicRepository()
	activityRepo := &mockActivityRepository{}
	svc := NewTopicService(topicRepo, projectRepo, activityRepo)

	topic, err := svc.CreateTopic(context.Background(), primary.CreateTopicRequest{
		ProjectID: "proj-1",
		Title:     "Queue choice",
		Question:  "Which broker meets the latency budget?",
		ActorID:   "user-1",
	})
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	if topic.Status != "open" {
		t.Errorf("expected initial status 'open', got '%s'", topic.Status)
	}
	if len(activityRepo.entries) != 1 {
		t.Errorf("expected 1 activity entry, got %d", len(activityRepo.entries))
	}
}

func TestTopicService_CreateTopic_RequiresQuestion(t *testing.T) {
	projectRepo := newMockProjectRepository()
	seedMockProject(projectRepo, "proj-1", "research")
	svc := NewTopicService(newMockTopicRepository(), projectRepo, &mockActivityRepository{})

	_, err := svc.CreateTopic(context.Background(), primary.CreateTopicRequest{
		ProjectID: "proj-1",
		Title:     "No question",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTopicService_UpdateTopic_ResolveStampsTimestamp(t *testing.T) {
	projectRepo := newMockProjectRepository()
	seedMockProject(projectRepo, "proj-1", "research")
	topicRepo := newMockTopicRepository()
	svc := NewTopicService(topicRepo, projectRepo, &mockActivityRepository{})
	ctx := context.Background()

	created, err := svc.CreateTopic(ctx, primary.CreateTopicRequest{
		ProjectID: "proj-1", Title: "T", Question: "Q",
	})
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}

	resolved, err := svc.UpdateTopic(ctx, primary.UpdateTopicRequest{
		TopicID:       created.ID,
		Title:         "T",
		Question:      "Q",
		ResearchNotes: "settled",
		Status:        "resolved",
	})
	if err != nil {
		t.Fatalf("UpdateTopic failed: %v", err)
	}
	if resolved.ResolvedAt == "" {
		t.Error("expected resolved_at stamped on resolution")
	}

	// Reopening clears the stamp.
	reopened, err := svc.UpdateTopic(ctx, primary.UpdateTopicRequest{
		TopicID:  created.ID,
		Title:    "T",
		Question: "Q",
		Status:   "researching",
	})
	if err != nil {
		t.Fatalf("UpdateTopic failed: %v", err)
	}
	if reopened.ResolvedAt != "" {
		t.Errorf("expected resolved_at cleared on reopen, got %q", reopened.ResolvedAt)
	}
}
