package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/bpos/internal/ports/primary"
)

func init() {
	// Keep adapter output plain so assertions see raw text.
	color.NoColor = true
}

// mockProjectService implements primary.ProjectService for testing
type mockProjectService struct {
	createProjectFn func(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error)
	listProjectsFn  func(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error)
	getProjectFn    func(ctx context.Context, projectID string) (*primary.Project, error)
	getStatsFn      func(ctx context.Context, projectID string) (*primary.ProjectStats, error)

	lastCreateReq primary.CreateProjectRequest
	lastUpdateReq primary.UpdateProjectRequest
	lastFilters   primary.ProjectFilters
}

func (m *mockProjectService) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error) {
	m.lastCreateReq = req
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, req)
	}
	return &primary.Project{ID: "proj-001", AppID: req.AppID, Name: req.Name, CurrentState: "planning"}, nil
}

func (m *mockProjectService) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	if m.getProjectFn != nil {
		return m.getProjectFn(ctx, projectID)
	}
	return &primary.Project{ID: projectID, AppID: "app-001", Name: "Checkout", CurrentState: "building"}, nil
}

func (m *mockProjectService) UpdateProject(ctx context.Context, req primary.UpdateProjectRequest) (*primary.Project, error) {
	m.lastUpdateReq = req
	return &primary.Project{ID: req.ProjectID, Name: req.Name}, nil
}

func (m *mockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	return nil
}

func (m *mockProjectService) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	m.lastFilters = filters
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx, filters)
	}
	return []*primary.Project{}, nil
}

func (m *mockProjectService) GetStats(ctx context.Context, projectID string) (*primary.ProjectStats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(ctx, projectID)
	}
	return &primary.ProjectStats{ProjectID: projectID}, nil
}

func TestProjectAdapter_Create(t *testing.T) {
	mock := &mockProjectService{}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	err := adapter.Create(context.Background(), "app-001", "Checkout", "New checkout flow")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if mock.lastCreateReq.AppID != "app-001" || mock.lastCreateReq.Name != "Checkout" {
		t.Errorf("unexpected create request: %+v", mock.lastCreateReq)
	}
	out := buf.String()
	if !strings.Contains(out, "✓ Created project proj-001: Checkout (planning)") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestProjectAdapter_CreateError(t *testing.T) {
	mock := &mockProjectService{
		createProjectFn: func(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error) {
			return nil, errors.New("app not found")
		},
	}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	if err := adapter.Create(context.Background(), "missing", "Checkout", ""); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got %q", buf.String())
	}
}

func TestProjectAdapter_List(t *testing.T) {
	mock := &mockProjectService{
		listProjectsFn: func(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
			return []*primary.Project{
				{ID: "proj-001", Name: "Checkout", CurrentState: "building"},
				{ID: "proj-002", Name: "Search", CurrentState: "live"},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "app-001", "building"); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if mock.lastFilters.AppID != "app-001" || mock.lastFilters.State != "building" {
		t.Errorf("filters not forwarded: %+v", mock.lastFilters)
	}
	out := buf.String()
	for _, want := range []string{"ID", "STATE", "proj-001", "Checkout", "proj-002", "live"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProjectAdapter_ListEmpty(t *testing.T) {
	mock := &mockProjectService{}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	if err := adapter.List(context.Background(), "", ""); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No projects found") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestProjectAdapter_Show(t *testing.T) {
	mock := &mockProjectService{}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	project, err := adapter.Show(context.Background(), "proj-001")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if project.ID != "proj-001" {
		t.Errorf("expected proj-001, got %s", project.ID)
	}
	out := buf.String()
	if !strings.Contains(out, "Project: proj-001") || !strings.Contains(out, "State:   building") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestProjectAdapter_UpdateRequiresField(t *testing.T) {
	mock := &mockProjectService{}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	if err := adapter.Update(context.Background(), "proj-001", "", ""); err == nil {
		t.Fatal("expected error when no fields given")
	}
}

func TestProjectAdapter_Stats(t *testing.T) {
	mock := &mockProjectService{
		getStatsFn: func(ctx context.Context, projectID string) (*primary.ProjectStats, error) {
			return &primary.ProjectStats{
				ProjectID:          projectID,
				TopicCount:         4,
				ResolvedTopicCount: 3,
				TaskCount:          2,
				DoneTaskCount:      1,
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewProjectAdapter(mock, &buf)

	if err := adapter.Stats(context.Background(), "proj-001"); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Topics:    4 (3 resolved)") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Tasks:     2 (1 done)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
