// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"
)

// Sentinel errors surfaced by repository implementations. Services map them
// to their own taxonomy; adapters translate them to exit codes or HTTP
// statuses.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConcurrentModification is returned when a conditional write matched
	// no row because another caller moved the state first. Transient; the
	// whole operation may be retried.
	ErrConcurrentModification = errors.New("concurrent modification")
)

// AppRepository defines the secondary port for app persistence.
type AppRepository interface {
	Create(ctx context.Context, app *AppRecord) error
	GetByID(ctx context.Context, id string) (*AppRecord, error)
	Update(ctx context.Context, app *AppRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*AppRecord, error)
}

// AppRecord represents an app as stored in persistence.
type AppRecord struct {
	ID          string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ProjectRepository defines the secondary port for project persistence.
// State changes go exclusively through ApplyTransition; Update covers only
// ordinary edits (name, description).
type ProjectRepository interface {
	Create(ctx context.Context, project *ProjectRecord) error
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)
	Update(ctx context.Context, project *ProjectRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters ProjectFilters) ([]*ProjectRecord, error)

	// ApplyTransition moves current_state from FromState to ToState and
	// appends the audit row in a single transaction. The update is
	// conditional on FromState: when no row matches, the project either
	// does not exist (ErrNotFound) or was moved by a concurrent caller
	// (ErrConcurrentModification). Both state change and audit land, or
	// neither.
	ApplyTransition(ctx context.Context, write TransitionWrite) error

	// Stats aggregates the dependent-entity counts for a project.
	Stats(ctx context.Context, projectID string) (*ProjectStats, error)
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID           string
	AppID        string
	Name         string
	Description  string
	CurrentState string
	CreatedAt    string
	UpdatedAt    string
}

// ProjectFilters narrows project listings.
type ProjectFilters struct {
	AppID string
	State string
	Limit int
}

// TransitionWrite carries one atomic lifecycle transition.
type TransitionWrite struct {
	ProjectID string
	FromState string
	ToState   string
	Audit     ActivityRecord
	// GateMarker records a passed gate on successful advances; nil for
	// rollbacks. Historical marker only, never re-read for authorization.
	GateMarker *GateMarker
}

// GateMarker is a passed-gate record keyed by (project, from, to).
type GateMarker struct {
	ID        string
	ProjectID string
	FromState string
	ToState   string
}

// ProjectStats aggregates dependent-entity counts for dashboards.
type ProjectStats struct {
	ArtifactCount      int
	TopicCount         int
	ResolvedTopicCount int
	ADRCount           int
	AcceptedADRCount   int
	TaskCount          int
	DoneTaskCount      int
	TestCount          int
	PassedTestCount    int
	RiskCount          int
	HighRiskCount      int
}

// GateCountReader provides the read-only entity counts consumed by gate
// evaluation. Implementations must be safe for concurrent use; counts are
// advisory until the transactional write in ApplyTransition succeeds.
type GateCountReader interface {
	CountArtifactsByType(ctx context.Context, projectID, artifactType string) (int, error)
	CountTopicsByStatus(ctx context.Context, projectID, status string) (int, error)
	CountADRsByStatuses(ctx context.Context, projectID string, statuses []string) (int, error)
	CountTasksByStatus(ctx context.Context, projectID, status string) (int, error)
	CountTestsByStatus(ctx context.Context, projectID, status string) (int, error)
}

// ArtifactRepository defines the secondary port for artifact persistence.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *ArtifactRecord) error
	GetByID(ctx context.Context, id string) (*ArtifactRecord, error)
	Update(ctx context.Context, artifact *ArtifactRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*ArtifactRecord, error)
}

// ArtifactRecord represents an artifact as stored in persistence.
type ArtifactRecord struct {
	ID           string
	ProjectID    string
	ArtifactType string
	Title        string
	Content      string
	AIGenerated  bool
	CreatedAt    string
	UpdatedAt    string
}

// TopicRepository defines the secondary port for research-topic persistence.
type TopicRepository interface {
	Create(ctx context.Context, topic *TopicRecord) error
	GetByID(ctx context.Context, id string) (*TopicRecord, error)
	Update(ctx context.Context, topic *TopicRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*TopicRecord, error)
}

// TopicRecord represents a research topic as stored in persistence.
type TopicRecord struct {
	ID            string
	ProjectID     string
	Title         string
	Question      string
	ResearchNotes string
	Status        string
	ResolvedAt    string
	CreatedAt     string
	UpdatedAt     string
}

// ADRRepository defines the secondary port for ADR persistence.
type ADRRepository interface {
	Create(ctx context.Context, adr *ADRRecord) error
	GetByID(ctx context.Context, id string) (*ADRRecord, error)
	Update(ctx context.Context, adr *ADRRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*ADRRecord, error)
}

// ADRRecord represents an architecture decision record as stored in
// persistence.
type ADRRecord struct {
	ID           string
	ProjectID    string
	Title        string
	Context      string
	Decision     string
	Consequences string
	Status       string
	LockedAt     string
	CreatedAt    string
	UpdatedAt    string
}

// TaskRepository defines the secondary port for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *TaskRecord) error
	GetByID(ctx context.Context, id string) (*TaskRecord, error)
	Update(ctx context.Context, task *TaskRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*TaskRecord, error)
}

// TaskRecord represents a task as stored in persistence.
type TaskRecord struct {
	ID              string
	ProjectID       string
	Title           string
	Description     string
	Status          string
	DependsOnTaskID string
	BlockedReason   string
	AssignedTo      string
	CreatedAt       string
	UpdatedAt       string
}

// TestRepository defines the secondary port for test-record persistence.
type TestRepository interface {
	Create(ctx context.Context, test *TestRecord) error
	GetByID(ctx context.Context, id string) (*TestRecord, error)
	Update(ctx context.Context, test *TestRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*TestRecord, error)
}

// TestRecord represents a test record as stored in persistence.
type TestRecord struct {
	ID             string
	ProjectID      string
	TestType       string
	Title          string
	Description    string
	ExpectedResult string
	ActualResult   string
	Status         string
	ExecutedAt     string
	CreatedAt      string
	UpdatedAt      string
}

// RiskRepository defines the secondary port for risk persistence.
type RiskRepository interface {
	Create(ctx context.Context, risk *RiskRecord) error
	GetByID(ctx context.Context, id string) (*RiskRecord, error)
	Update(ctx context.Context, risk *RiskRecord) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]*RiskRecord, error)
}

// RiskRecord represents a risk as stored in persistence.
type RiskRecord struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Level       string
	Mitigation  string
	CreatedAt   string
	UpdatedAt   string
}

// ActivityLogRepository defines the secondary port for the append-only
// activity log. Entries are never mutated or deleted.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *ActivityRecord) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*ActivityRecord, error)
}

// ActivityRecord represents one activity-log row.
type ActivityRecord struct {
	ID             string
	ProjectID      string
	ActorID        string // empty means system actor (stored as NULL)
	EventType      string
	EntityType     string
	EntityID       string
	Description    string
	PreviousState  string
	NewState       string
	Severity       string
	IsRollback     bool
	RollbackReason string
	Forced         bool
	CreatedAt      string
}
