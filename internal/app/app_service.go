package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// AppServiceImpl implements the AppService interface.
type AppServiceImpl struct {
	appRepo secondary.AppRepository
}

// NewAppService creates a new AppService with injected dependencies.
func NewAppService(appRepo secondary.AppRepository) *AppServiceImpl {
	return &AppServiceImpl{appRepo: appRepo}
}

// CreateApp creates a new app.
func (s *AppServiceImpl) CreateApp(ctx context.Context, req primary.CreateAppRequest) (*primary.App, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: app name is required", ErrInvalidInput)
	}

	record := &secondary.AppRecord{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.appRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return s.GetApp(ctx, record.ID)
}

// GetApp retrieves an app by ID.
func (s *AppServiceImpl) GetApp(ctx context.Context, appID string) (*primary.App, error) {
	record, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	return recordToApp(record), nil
}

// UpdateApp updates an app's name and description.
func (s *AppServiceImpl) UpdateApp(ctx context.Context, req primary.UpdateAppRequest) (*primary.App, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: app name is required", ErrInvalidInput)
	}

	record, err := s.appRepo.GetByID(ctx, req.AppID)
	if err != nil {
		return nil, err
	}
	record.Name = req.Name
	record.Description = req.Description

	if err := s.appRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetApp(ctx, req.AppID)
}

// DeleteApp removes an app and cascades to its projects.
func (s *AppServiceImpl) DeleteApp(ctx context.Context, appID string) error {
	return s.appRepo.Delete(ctx, appID)
}

// ListApps retrieves all apps.
func (s *AppServiceImpl) ListApps(ctx context.Context) ([]*primary.App, error) {
	records, err := s.appRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	apps := make([]*primary.App, len(records))
	for i, record := range records {
		apps[i] = recordToApp(record)
	}
	return apps, nil
}

func recordToApp(record *secondary.AppRecord) *primary.App {
	return &primary.App{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
