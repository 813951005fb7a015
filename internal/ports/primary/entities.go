package primary

import "context"

// ArtifactService defines the primary port for artifact operations.
type ArtifactService interface {
	CreateArtifact(ctx context.Context, req CreateArtifactRequest) (*Artifact, error)
	GetArtifact(ctx context.Context, artifactID string) (*Artifact, error)
	UpdateArtifact(ctx context.Context, req UpdateArtifactRequest) (*Artifact, error)
	DeleteArtifact(ctx context.Context, artifactID string) error
	ListArtifacts(ctx context.Context, projectID string) ([]*Artifact, error)
}

// Artifact represents an artifact entity at the port boundary.
type Artifact struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	ArtifactType string `json:"artifact_type"`
	Title        string `json:"title"`
	Content      string `json:"content,omitempty"`
	AIGenerated  bool   `json:"ai_generated"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CreateArtifactRequest contains parameters for creating an artifact.
type CreateArtifactRequest struct {
	ProjectID    string `json:"project_id"`
	ArtifactType string `json:"artifact_type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	AIGenerated  bool   `json:"ai_generated"`
	ActorID      string `json:"-"`
}

// UpdateArtifactRequest contains the editable fields of an artifact.
type UpdateArtifactRequest struct {
	ArtifactID string `json:"-"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// TopicService defines the primary port for research-topic operations.
type TopicService interface {
	CreateTopic(ctx context.Context, req CreateTopicRequest) (*Topic, error)
	GetTopic(ctx context.Context, topicID string) (*Topic, error)
	UpdateTopic(ctx context.Context, req UpdateTopicRequest) (*Topic, error)
	DeleteTopic(ctx context.Context, topicID string) error
	ListTopics(ctx context.Context, projectID string) ([]*Topic, error)
}

// Topic represents a research topic at the port boundary.
type Topic struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Title         string `json:"title"`
	Question      string `json:"question"`
	ResearchNotes string `json:"research_notes,omitempty"`
	Status        string `json:"status"`
	ResolvedAt    string `json:"resolved_at,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// CreateTopicRequest contains parameters for creating a topic.
type CreateTopicRequest struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Question  string `json:"question"`
	ActorID   string `json:"-"`
}

// UpdateTopicRequest contains the editable fields of a topic. Moving status
// to resolved stamps resolved_at.
type UpdateTopicRequest struct {
	TopicID       string `json:"-"`
	Title         string `json:"title"`
	Question      string `json:"question"`
	ResearchNotes string `json:"research_notes"`
	Status        string `json:"status"`
}

// ADRService defines the primary port for architecture decision records.
type ADRService interface {
	CreateADR(ctx context.Context, req CreateADRRequest) (*ADR, error)
	GetADR(ctx context.Context, adrID string) (*ADR, error)
	UpdateADR(ctx context.Context, req UpdateADRRequest) (*ADR, error)
	DeleteADR(ctx context.Context, adrID string) error
	ListADRs(ctx context.Context, projectID string) ([]*ADR, error)
}

// ADR represents an architecture decision record at the port boundary.
type ADR struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Title        string `json:"title"`
	Context      string `json:"context"`
	Decision     string `json:"decision"`
	Consequences string `json:"consequences,omitempty"`
	Status       string `json:"status"`
	LockedAt     string `json:"locked_at,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CreateADRRequest contains parameters for creating an ADR.
type CreateADRRequest struct {
	ProjectID    string `json:"project_id"`
	Title        string `json:"title"`
	Context      string `json:"context"`
	Decision     string `json:"decision"`
	Consequences string `json:"consequences"`
	ActorID      string `json:"-"`
}

// UpdateADRRequest contains the editable fields of an ADR. Moving status to
// locked stamps locked_at.
type UpdateADRRequest struct {
	ADRID        string `json:"-"`
	Title        string `json:"title"`
	Context      string `json:"context"`
	Decision     string `json:"decision"`
	Consequences string `json:"consequences"`
	Status       string `json:"status"`
}

// TaskService defines the primary port for task operations.
type TaskService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error)
	GetTask(ctx context.Context, taskID string) (*Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ListTasks(ctx context.Context, projectID string) ([]*Task, error)

	// CanStart evaluates whether a task is ready to begin: dependency
	// finished, not explicitly blocked, advisory warnings for odd project
	// states and missing assignees.
	CanStart(ctx context.Context, taskID string) (*TaskReadiness, error)
}

// Task represents a task entity at the port boundary.
type Task struct {
	ID              string `json:"id"`
	ProjectID       string `json:"project_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	DependsOnTaskID string `json:"depends_on_task_id,omitempty"`
	BlockedReason   string `json:"blocked_reason,omitempty"`
	AssignedTo      string `json:"assigned_to,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// CreateTaskRequest contains parameters for creating a task.
type CreateTaskRequest struct {
	ProjectID       string `json:"project_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DependsOnTaskID string `json:"depends_on_task_id"`
	AssignedTo      string `json:"assigned_to"`
	ActorID         string `json:"-"`
}

// UpdateTaskRequest contains the editable fields of a task.
type UpdateTaskRequest struct {
	TaskID        string `json:"-"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	BlockedReason string `json:"blocked_reason"`
	AssignedTo    string `json:"assigned_to"`
}

// TaskReadiness is the start-readiness verdict for one task.
type TaskReadiness struct {
	TaskID       string   `json:"task_id"`
	TaskTitle    string   `json:"task_title"`
	TaskStatus   string   `json:"task_status"`
	CanStart     bool     `json:"can_start"`
	Reason       string   `json:"reason,omitempty"`
	Blockers     []string `json:"blockers"`
	Warnings     []string `json:"warnings"`
	ProjectState string   `json:"project_state,omitempty"`
}

// TestService defines the primary port for test-record operations.
type TestService interface {
	CreateTest(ctx context.Context, req CreateTestRequest) (*Test, error)
	GetTest(ctx context.Context, testID string) (*Test, error)
	UpdateTest(ctx context.Context, req UpdateTestRequest) (*Test, error)
	DeleteTest(ctx context.Context, testID string) error
	ListTests(ctx context.Context, projectID string) ([]*Test, error)

	// RecordResult sets the pass/fail outcome and stamps executed_at.
	RecordResult(ctx context.Context, req RecordTestResultRequest) (*Test, error)
}

// Test represents a test record at the port boundary.
type Test struct {
	ID             string `json:"id"`
	ProjectID      string `json:"project_id"`
	TestType       string `json:"test_type"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ExpectedResult string `json:"expected_result,omitempty"`
	ActualResult   string `json:"actual_result,omitempty"`
	Status         string `json:"status"`
	ExecutedAt     string `json:"executed_at,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// CreateTestRequest contains parameters for creating a test record.
type CreateTestRequest struct {
	ProjectID      string `json:"project_id"`
	TestType       string `json:"test_type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ExpectedResult string `json:"expected_result"`
	ActorID        string `json:"-"`
}

// UpdateTestRequest contains the editable fields of a test record.
type UpdateTestRequest struct {
	TestID         string `json:"-"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ExpectedResult string `json:"expected_result"`
}

// RecordTestResultRequest records one execution outcome.
type RecordTestResultRequest struct {
	TestID       string `json:"-"`
	Status       string `json:"status"` // passed or failed
	ActualResult string `json:"actual_result"`
}

// RiskService defines the primary port for risk operations.
type RiskService interface {
	CreateRisk(ctx context.Context, req CreateRiskRequest) (*Risk, error)
	GetRisk(ctx context.Context, riskID string) (*Risk, error)
	UpdateRisk(ctx context.Context, req UpdateRiskRequest) (*Risk, error)
	DeleteRisk(ctx context.Context, riskID string) error
	ListRisks(ctx context.Context, projectID string) ([]*Risk, error)
}

// Risk represents a risk entity at the port boundary.
type Risk struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level"`
	Mitigation  string `json:"mitigation,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateRiskRequest contains parameters for creating a risk.
type CreateRiskRequest struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Mitigation  string `json:"mitigation"`
	ActorID     string `json:"-"`
}

// UpdateRiskRequest contains the editable fields of a risk.
type UpdateRiskRequest struct {
	RiskID      string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Mitigation  string `json:"mitigation"`
}
