package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/core/state"
	coretask "github.com/example/bpos/internal/core/task"
	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// Task statuses accepted by the persistence layer.
var validTaskStatuses = map[string]bool{
	coretask.StatusTodo:       true,
	coretask.StatusInProgress: true,
	coretask.StatusBlocked:    true,
	coretask.StatusDone:       true,
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo     secondary.TaskRepository
	projectRepo  secondary.ProjectRepository
	activityRepo secondary.ActivityLogRepository
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository, projectRepo secondary.ProjectRepository, activityRepo secondary.ActivityLogRepository) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
	}
}

// CreateTask creates a new task in todo status.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*primary.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrInvalidInput)
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	// A declared dependency must exist and belong to the same project.
	if req.DependsOnTaskID != "" {
		dep, err := s.taskRepo.GetByID(ctx, req.DependsOnTaskID)
		if err != nil {
			return nil, err
		}
		if dep.ProjectID != req.ProjectID {
			return nil, fmt.Errorf("%w: dependency task belongs to a different project", ErrInvalidInput)
		}
	}

	record := &secondary.TaskRecord{
		ID:              uuid.NewString(),
		ProjectID:       req.ProjectID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          coretask.StatusTodo,
		DependsOnTaskID: req.DependsOnTaskID,
		AssignedTo:      req.AssignedTo,
	}
	if err := s.taskRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := logEntityEvent(ctx, s.activityRepo, req.ProjectID, req.ActorID, eventEntityCreated, "task", record.ID,
		fmt.Sprintf("Task %q created", req.Title)); err != nil {
		return nil, err
	}

	return s.GetTask(ctx, record.ID)
}

// GetTask retrieves a task by ID.
func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID string) (*primary.Task, error) {
	record, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return recordToTask(record), nil
}

// UpdateTask updates a task's editable fields including status.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req primary.UpdateTaskRequest) (*primary.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrInvalidInput)
	}
	if !validTaskStatuses[req.Status] {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, req.Status)
	}

	record, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	record.Title = req.Title
	record.Description = req.Description
	record.Status = req.Status
	record.AssignedTo = req.AssignedTo
	record.BlockedReason = req.BlockedReason
	if req.Status != coretask.StatusBlocked {
		record.BlockedReason = ""
	}

	if err := s.taskRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, req.TaskID)
}

// DeleteTask removes a task.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.Delete(ctx, taskID)
}

// ListTasks retrieves the tasks of one project.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, projectID string) ([]*primary.Task, error) {
	records, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks := make([]*primary.Task, len(records))
	for i, record := range records {
		tasks[i] = recordToTask(record)
	}
	return tasks, nil
}

// CanStart evaluates whether a task is ready to begin.
func (s *TaskServiceImpl) CanStart(ctx context.Context, taskID string) (*primary.TaskReadiness, error) {
	// 1. Fetch the task and its surroundings
	record, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return nil, err
	}

	startCtx := coretask.StartContext{
		Status:        record.Status,
		BlockedReason: record.BlockedReason,
		AssignedTo:    record.AssignedTo,
		ProjectState:  state.State(project.CurrentState),
	}

	if record.DependsOnTaskID != "" {
		dep, err := s.taskRepo.GetByID(ctx, record.DependsOnTaskID)
		if err != nil {
			return nil, err
		}
		startCtx.HasDependency = true
		startCtx.DependencyTitle = dep.Title
		startCtx.DependencyStatus = dep.Status
	}

	// 2. Pure readiness check
	result := coretask.CanStart(startCtx)

	readiness := &primary.TaskReadiness{
		TaskID:       record.ID,
		TaskTitle:    record.Title,
		TaskStatus:   record.Status,
		CanStart:     result.CanStart,
		Reason:       result.Reason,
		Blockers:     result.Blockers,
		Warnings:     result.Warnings,
		ProjectState: project.CurrentState,
	}
	if readiness.Blockers == nil {
		readiness.Blockers = []string{}
	}
	if readiness.Warnings == nil {
		readiness.Warnings = []string{}
	}
	return readiness, nil
}

func recordToTask(record *secondary.TaskRecord) *primary.Task {
	return &primary.Task{
		ID:              record.ID,
		ProjectID:       record.ProjectID,
		Title:           record.Title,
		Description:     record.Description,
		Status:          record.Status,
		DependsOnTaskID: record.DependsOnTaskID,
		BlockedReason:   record.BlockedReason,
		AssignedTo:      record.AssignedTo,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}
