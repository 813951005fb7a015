package primary

import "context"

// AppService defines the primary port for app operations.
type AppService interface {
	CreateApp(ctx context.Context, req CreateAppRequest) (*App, error)
	GetApp(ctx context.Context, appID string) (*App, error)
	UpdateApp(ctx context.Context, req UpdateAppRequest) (*App, error)
	DeleteApp(ctx context.Context, appID string) error
	ListApps(ctx context.Context) ([]*App, error)
}

// App represents an app entity at the port boundary.
type App struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateAppRequest contains parameters for creating an app.
type CreateAppRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateAppRequest contains parameters for updating an app.
type UpdateAppRequest struct {
	AppID       string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectService defines the primary port for project CRUD. Lifecycle state
// is read-only here; it changes only through the LifecycleService.
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	GetProject(ctx context.Context, projectID string) (*Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*Project, error)

	// GetStats aggregates the dependent-entity counts for one project.
	GetStats(ctx context.Context, projectID string) (*ProjectStats, error)
}

// Project represents a project entity at the port boundary.
type Project struct {
	ID           string `json:"id"`
	AppID        string `json:"app_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CurrentState string `json:"current_state"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CreateProjectRequest contains parameters for creating a project.
// New projects always start in the initial lifecycle state.
type CreateProjectRequest struct {
	AppID       string `json:"app_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest contains the ordinary-edit fields of a project.
type UpdateProjectRequest struct {
	ProjectID   string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectFilters contains filter options for listing projects.
type ProjectFilters struct {
	AppID string
	State string
	Limit int
}

// ProjectStats mirrors the dependent-entity counts kept for dashboards.
type ProjectStats struct {
	ProjectID          string `json:"project_id"`
	ArtifactCount      int    `json:"artifact_count"`
	TopicCount         int    `json:"topic_count"`
	ResolvedTopicCount int    `json:"resolved_topic_count"`
	ADRCount           int    `json:"adr_count"`
	AcceptedADRCount   int    `json:"accepted_adr_count"`
	TaskCount          int    `json:"task_count"`
	DoneTaskCount      int    `json:"done_task_count"`
	TestCount          int    `json:"test_count"`
	PassedTestCount    int    `json:"passed_test_count"`
	RiskCount          int    `json:"risk_count"`
	HighRiskCount      int    `json:"high_risk_count"`
}
