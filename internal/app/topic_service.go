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

// Topic statuses accepted by the persistence layer.
var validTopicStatuses = map[string]bool{
	"open":        true,
	"researching": true,
	"resolved":    true,
}

// TopicServiceImpl implements the TopicService interface.
type TopicServiceImpl struct {
	topicRepo    secondary.TopicRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewTopicService creates a new TopicService with injected dependencies.
func NewTopicService(topicRepo secondary.TopicRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *TopicServiceImpl {
	return &TopicServiceImpl{
		topicRepo:    topicRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateTopic creates a new research topic in open status.
func (s *TopicServiceImpl) CreateTopic(ctx context.Context, req primary.CreateTopicRequest) (*primary.Topic, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: topic title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("%w: topic question is required", ErrInvalidInput)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	record := &secondary.TopicRecord{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Question:  req.Question,
		Status:    "open",
	}
	if err := s.topicRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "topic", record.ID,
		fmt.Sprintf("Research topic %q created", req.Title)); err != nil {
		return nil, err
	}

	return s.GetTopic(ctx, record.ID)
}

// GetTopic retrieves a topic by ID.
func (s *TopicServiceImpl) GetTopic(ctx context.Context, topicID string) (*primary.Topic, error) {
	record, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return recordToTopic(record), nil
}

// UpdateTopic updates a topic. Moving status to resolved stamps resolved_at;
// moving away from resolved clears it.
func (s *TopicServiceImpl) UpdateTopic(ctx context.Context, req primary.UpdateTopicRequest) (*primary.Topic, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: topic title is required", ErrInvalidInput)
	}
	if !validTopicStatuses[req.Status] {
		return nil, fmt.Errorf("%w: unknown topic status %q", ErrInvalidInput, req.Status)
	}

	record, err := s.topicRepo.GetByID(ctx, req.TopicID)
	if err != nil {
		return nil, err
	}

	record.Title = req.Title
	record.Question = req.Question
	record.ResearchNotes = req.ResearchNotes

	if req.Status == "resolved" && record.Status != "resolved" {
		record.ResolvedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if req.Status != "resolved" {
		record.ResolvedAt = ""
	}
	record.Status = req.Status

	if err := s.topicRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetTopic(ctx, req.TopicID)
}

// DeleteTopic removes a topic.
func (s *TopicServiceImpl) DeleteTopic(ctx context.Context, topicID string) error {
	return s.topicRepo.Delete(ctx, topicID)
}

// ListTopics retrieves the topics of one project.
func (s *TopicServiceImpl) ListTopics(ctx context.Context, projectID string) ([]*primary.Topic, error) {
	records, err := s.topicRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	topics := make([]*primary.Topic, len(records))
	for i, record := range records {
		topics[i] = recordToTopic(record)
	}
	return topics, nil
}

func recordToTopic(record *secondary.TopicRecord) *primary.Topic {
	return &primary.Topic{
		ID:            record.ID,
		ProjectID:     record.ProjectID,
		Title:         record.Title,
		Question:      record.Question,
		ResearchNotes: record.ResearchNotes,
		Status:        record.Status,
		ResolvedAt:    record.ResolvedAt,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
