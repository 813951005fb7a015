package app

import (
	"context"
	"fmt"

	"github.com/example/bpos/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockProjectRepository implements secondary.ProjectRepository for testing.
type mockProjectRepository struct {
	projects      map[string]*secondary.ProjectRecord
	transitions   []secondary.TransitionWrite
	transitionErr error
	stats         *secondary.ProjectStats
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{
		projects: make(map[string]*secondary.ProjectRecord),
	}
}

func (m *mockProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if project, ok := m.projects[id]; ok {
		copied := *project
		return &copied, nil
	}
	return nil, fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *secondary.ProjectRecord) error {
	if _, ok := m.projects[project.ID]; !ok {
		return fmt.Errorf("project %s: %w", project.ID, secondary.ErrNotFound)
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, secondary.ErrNotFound)
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	var result []*secondary.ProjectRecord
	for _, project := range m.projects {
		if filters.AppID != "" && project.AppID != filters.AppID {
			continue
		}
		if filters.State != "" && project.CurrentState != filters.State {
			continue
		}
		result = append(result, project)
	}
	return result, nil
}

// ApplyTransition mimics the conditional-update semantics of the SQLite
// implementation, including the stale-state distinction.
func (m *mockProjectRepository) ApplyTransition(ctx context.Context, write secondary.TransitionWrite) error {
	if m.transitionErr != nil {
		return m.transitionErr
	}
	project, ok := m.projects[write.ProjectID]
	if !ok {
		return fmt.Errorf("project %s: %w", write.ProjectID, secondary.ErrNotFound)
	}
	if project.CurrentState != write.FromState {
		return fmt.Errorf("project %s moved from %s: %w", write.ProjectID, write.FromState, secondary.ErrConcurrentModification)
	}
	project.CurrentState = write.ToState
	m.transitions = append(m.transitions, write)
	return nil
}

func (m *mockProjectRepository) Stats(ctx context.Context, projectID string) (*secondary.ProjectStats, error) {
	if m.stats != nil {
		return m.stats, nil
	}
	return &secondary.ProjectStats{}, nil
}

// mockCountReader implements secondary.GateCountReader with fixed counts.
type mockCountReader struct {
	prdArtifacts   int
	resolvedTopics int
	acceptedADRs   int
	doneTasks      int
	passedTests    int
}

func (m *mockCountReader) CountArtifactsByType(ctx context.Context, projectID, artifactType string) (int, error) {
	return m.prdArtifacts, nil
}

func (m *mockCountReader) CountTopicsByStatus(ctx context.Context, projectID, status string) (int, error) {
	return m.resolvedTopics, nil
}

func (m *mockCountReader) CountADRsByStatuses(ctx context.Context, projectID string, statuses []string) (int, error) {
	return m.acceptedADRs, nil
}

func (m *mockCountReader) CountTasksByStatus(ctx context.Context, projectID, status string) (int, error) {
	return m.doneTasks, nil
}

func (m *mockCountReader) CountTestsByStatus(ctx context.Context, projectID, status string) (int, error) {
	return m.passedTests, nil
}

// mockActivityRepository implements secondary.ActivityLogRepository for testing.
type mockActivityRepository struct {
	entries   []*secondary.ActivityRecord
	appendErr error
}

func (m *mockActivityRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*secondary.ActivityRecord, error) {
	var result []*secondary.ActivityRecord
	for _, entry := range m.entries {
		if entry.ProjectID == projectID {
			result = append(result, entry)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// mockTaskRepository implements secondary.TaskRepository for testing.
type mockTaskRepository struct {
	tasks map[string]*secondary.TaskRecord
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[string]*secondary.TaskRecord)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	if task, ok := m.tasks[id]; ok {
		copied := *task
		return &copied, nil
	}
	return nil, fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *secondary.TaskRecord) error {
	if _, ok := m.tasks[task.ID]; !ok {
		return fmt.Errorf("task %s: %w", task.ID, secondary.ErrNotFound)
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TaskRecord, error) {
	var result []*secondary.TaskRecord
	for _, task := range m.tasks {
		if task.ProjectID == projectID {
			result = append(result, task)
		}
	}
	return result, nil
}

// mockTopicRepository implements secondary.TopicRepository for testing.
type mockTopicRepository struct {
	topics map[string]*secondary.TopicRecord
}

func newMockTopicRepository() *mockTopicRepository {
	return &mockTopicRepository{topics: make(map[string]*secondary.TopicRecord)}
}

func (m *mockTopicRepository) Create(ctx context.Context, topic *secondary.TopicRecord) error {
	m.topics[topic.ID] = topic
	return nil
}

func (m *mockTopicRepository) GetByID(ctx context.Context, id string) (*secondary.TopicRecord, error) {
	if topic, ok := m.topics[id]; ok {
		copied := *topic
		return &copied, nil
	}
	return nil, fmt.Errorf("topic %s: %w", id, secondary.ErrNotFound)
}

func (m *mockTopicRepository) Update(ctx context.Context, topic *secondary.TopicRecord) error {
	if _, ok := m.topics[topic.ID]; !ok {
		return fmt.Errorf("topic %s: %w", topic.ID, secondary.ErrNotFound)
	}
	m.topics[topic.ID] = topic
	return nil
}

func (m *mockTopicRepository) Delete(ctx context.Context, id string) error {
	delete(m.topics, id)
	return nil
}

func (m *mockTopicRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TopicRecord, error) {
	var result []*secondary.TopicRecord
	for _, topic := range m.topics {
		if topic.ProjectID == projectID {
			result = append(result, topic)
		}
	}
	return result, nil
}

// mockTestRepository implements secondary.TestRepository for testing.
type mockTestRepository struct {
	tests map[string]*secondary.TestRecord
}

func newMockTestRepository() *mockTestRepository {
	return &mockTestRepository{tests: make(map[string]*secondary.TestRecord)}
}

func (m *mockTestRepository) Create(ctx context.Context, test *secondary.TestRecord) error {
	m.tests[test.ID] = test
	return nil
}

func (m *mockTestRepository) GetByID(ctx context.Context, id string) (*secondary.TestRecord, error) {
	if test, ok := m.tests[id]; ok {
		copied := *test
		return &copied, nil
	}
	return nil, fmt.Errorf("test %s: %w", id, secondary.ErrNotFound)
}

func (m *mockTestRepository) Update(ctx context.Context, test *secondary.TestRecord) error {
	if _, ok := m.tests[test.ID]; !ok {
		return fmt.Errorf("test %s: %w", test.ID, secondary.ErrNotFound)
	}
	m.tests[test.ID] = test
	return nil
}

func (m *mockTestRepository) Delete(ctx context.Context, id string) error {
	delete(m.tests, id)
	return nil
}

func (m *mockTestRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.TestRecord, error) {
	var result []*secondary.TestRecord
	for _, test := range m.tests {
		if test.ProjectID == projectID {
			result = append(result, test)
		}
	}
	return result, nil
}

// mockArtifactRepository implements secondary.ArtifactRepository for testing.
type mockArtifactRepository struct {
	artifacts map[string]*secondary.ArtifactRecord
}

func newMockArtifactRepository() *mockArtifactRepository {
	return &mockArtifactRepository{artifacts: make(map[string]*secondary.ArtifactRecord)}
}

func (m *mockArtifactRepository) Create(ctx context.Context, artifact *secondary.ArtifactRecord) error {
	m.artifacts[artifact.ID] = artifact
	return nil
}

func (m *mockArtifactRepository) GetByID(ctx context.Context, id string) (*secondary.ArtifactRecord, error) {
	if artifact, ok := m.artifacts[id]; ok {
		copied := *artifact
		return &copied, nil
	}
	return nil, fmt.Errorf("artifact %s: %w", id, secondary.ErrNotFound)
}

func (m *mockArtifactRepository) Update(ctx context.Context, artifact *secondary.ArtifactRecord) error {
	if _, ok := m.artifacts[artifact.ID]; !ok {
		return fmt.Errorf("artifact %s: %w", artifact.ID, secondary.ErrNotFound)
	}
	m.artifacts[artifact.ID] = artifact
	return nil
}

func (m *mockArtifactRepository) Delete(ctx context.Context, id string) error {
	delete(m.artifacts, id)
	return nil
}

func (m *mockArtifactRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.ArtifactRecord, error) {
	var result []*secondary.ArtifactRecord
	for _, artifact := range m.artifacts {
		if artifact.ProjectID == projectID {
			result = append(result, artifact)
		}
	}
	return result, nil
}

// mockADRRepository implements secondary.ADRRepository for testing.
type mockADRRepository struct {
	adrs map[string]*secondary.ADRRecord
}

func newMockADRRepository() *mockADRRepository {
	return &mockADRRepository{adrs: make(map[string]*secondary.ADRRecord)}
}

func (m *mockADRRepository) Create(ctx context.Context, adr *secondary.ADRRecord) error {
	m.adrs[adr.ID] = adr
	return nil
}

func (m *mockADRRepository) GetByID(ctx context.Context, id string) (*secondary.ADRRecord, error) {
	if adr, ok := m.adrs[id]; ok {
		copied := *adr
		return &copied, nil
	}
	return nil, fmt.Errorf("adr %s: %w", id, secondary.ErrNotFound)
}

func (m *mockADRRepository) Update(ctx context.Context, adr *secondary.ADRRecord) error {
	if _, ok := m.adrs[adr.ID]; !ok {
		return fmt.Errorf("adr %s: %w", adr.ID, secondary.ErrNotFound)
	}
	m.adrs[adr.ID] = adr
	return nil
}

func (m *mockADRRepository) Delete(ctx context.Context, id string) error {
	delete(m.adrs, id)
	return nil
}

func (m *mockADRRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.ADRRecord, error) {
	var result []*secondary.ADRRecord
	for _, adr := range m.adrs {
		if adr.ProjectID == projectID {
			result = append(result, adr)
		}
	}
	return result, nil
}

// mockGenerator implements secondary.TextGenerator for testing.
type mockGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (m *mockGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.lastSystem = system
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// seedMockProject adds a project in the given state and returns its ID.
func seedMockProject(repo *mockProjectRepository, id, currentState string) string {
	repo.projects[id] = &secondary.ProjectRecord{
		ID:           id,
		AppID:        "app-1",
		Name:         "Test Project",
		CurrentState: currentState,
	}
	return id
}
