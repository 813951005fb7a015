// Package wire provides dependency injection for the bpos application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/bpos/internal/adapters/cli"
	"github.com/example/bpos/internal/adapters/httpapi"
	"github.com/example/bpos/internal/adapters/llm"
	"github.com/example/bpos/internal/adapters/sqlite"
	"github.com/example/bpos/internal/app"
	"github.com/example/bpos/internal/config"
	"github.com/example/bpos/internal/db"
	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

var (
	cfg *config.Config

	appService       primary.AppService
	projectService   primary.ProjectService
	lifecycleService primary.LifecycleService
	artifactService  primary.ArtifactService
	topicService     primary.TopicService
	adrService       primary.ADRService
	taskService      primary.TaskService
	testService      primary.TestService
	riskService      primary.RiskService
	activityService  primary.ActivityService
	assistantService primary.AssistantService

	once sync.Once
)

// Configure supplies the loaded configuration. Must be called before the
// first service accessor; later calls have no effect on built services.
func Configure(c *config.Config) {
	cfg = c
	if c != nil && c.DBPath != "" {
		db.SetPath(c.DBPath)
	}
}

// AppService returns the singleton AppService instance.
func AppService() primary.AppService {
	once.Do(initServices)
	return appService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// LifecycleService returns the singleton LifecycleService instance.
func LifecycleService() primary.LifecycleService {
	once.Do(initServices)
	return lifecycleService
}

// ArtifactService returns the singleton ArtifactService instance.
func ArtifactService() primary.ArtifactService {
	once.Do(initServices)
	return artifactService
}

// TopicService returns the singleton TopicService instance.
func TopicService() primary.TopicService {
	once.Do(initServices)
	return topicService
}

// ADRService returns the singleton ADRService instance.
func ADRService() primary.ADRService {
	once.Do(initServices)
	return adrService
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// TestService returns the singleton TestService instance.
func TestService() primary.TestService {
	once.Do(initServices)
	return testService
}

// RiskService returns the singleton RiskService instance.
func RiskService() primary.RiskService {
	once.Do(initServices)
	return riskService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// AssistantService returns the singleton AssistantService instance, or nil
// when no assistant API key is configured.
func AssistantService() primary.AssistantService {
	once.Do(initServices)
	return assistantService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	appRepo := sqlite.NewAppRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	artifactRepo := sqlite.NewArtifactRepository(database)
	topicRepo := sqlite.NewTopicRepository(database)
	adrRepo := sqlite.NewADRRepository(database)
	taskRepo := sqlite.NewTaskRepository(database)
	testRepo := sqlite.NewTestRepository(database)
	riskRepo := sqlite.NewRiskRepository(database)
	activityRepo := sqlite.NewActivityLogRepository(database)
	countsRepo := sqlite.NewCountsRepository(database)

	// Create services (primary ports implementation)
	appService = app.NewAppService(appRepo)
	projectService = app.NewProjectService(projectRepo, appRepo)
	lifecycleService = app.NewLifecycleService(projectRepo, countsRepo)
	artifactService = app.NewArtifactService(artifactRepo, projectRepo, activityRepo)
	topicService = app.NewTopicService(topicRepo, projectRepo, activityRepo)
	adrService = app.NewADRService(adrRepo, projectRepo, activityRepo)
	taskService = app.NewTaskService(taskRepo, projectRepo, activityRepo)
	testService = app.NewTestService(testRepo, projectRepo, activityRepo)
	riskService = app.NewRiskService(riskRepo, projectRepo, activityRepo)
	activityService = app.NewActivityService(activityRepo, projectRepo)

	if generator := buildGenerator(); generator != nil {
		assistantService = app.NewAssistantService(generator, projectRepo, artifactRepo, adrRepo)
	}
}

// buildGenerator constructs the assistant text generator, or returns nil
// when no API key is available. The assistant is optional.
func buildGenerator() secondary.TextGenerator {
	opts := llm.Options{}
	if cfg != nil {
		opts.APIKey = cfg.AssistantAPIKey
		opts.BaseURL = cfg.AssistantBaseURL
		opts.Model = cfg.AssistantModel
	}

	client, err := llm.NewClient(opts)
	if err != nil {
		slog.Debug("assistant disabled", "reason", err)
		return nil
	}
	return client
}

// HTTPServices bundles the singleton services for the HTTP server.
func HTTPServices() httpapi.Services {
	once.Do(initServices)
	return httpapi.Services{
		Apps:      appService,
		Projects:  projectService,
		Lifecycle: lifecycleService,
		Artifacts: artifactService,
		Topics:    topicService,
		ADRs:      adrService,
		Tasks:     taskService,
		Tests:     testService,
		Risks:     riskService,
		Activity:  activityService,
		Assistant: assistantService,
	}
}

// AppAdapter returns a new AppAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AppAdapter() *cliadapter.AppAdapter {
	return AppAdapterWithOutput(os.Stdout)
}

// AppAdapterWithOutput returns a new AppAdapter writing to the given output.
func AppAdapterWithOutput(out io.Writer) *cliadapter.AppAdapter {
	once.Do(initServices)
	return cliadapter.NewAppAdapter(appService, out)
}

// ProjectAdapter returns a new ProjectAdapter writing to stdout.
func ProjectAdapter() *cliadapter.ProjectAdapter {
	return ProjectAdapterWithOutput(os.Stdout)
}

// ProjectAdapterWithOutput returns a new ProjectAdapter writing to the given output.
func ProjectAdapterWithOutput(out io.Writer) *cliadapter.ProjectAdapter {
	once.Do(initServices)
	return cliadapter.NewProjectAdapter(projectService, out)
}

// LifecycleAdapter returns a new LifecycleAdapter writing to stdout.
func LifecycleAdapter() *cliadapter.LifecycleAdapter {
	return LifecycleAdapterWithOutput(os.Stdout)
}

// LifecycleAdapterWithOutput returns a new LifecycleAdapter writing to the given output.
func LifecycleAdapterWithOutput(out io.Writer) *cliadapter.LifecycleAdapter {
	once.Do(initServices)
	return cliadapter.NewLifecycleAdapter(lifecycleService, out)
}

// ActivityAdapter returns a new ActivityAdapter writing to stdout.
func ActivityAdapter() *cliadapter.ActivityAdapter {
	return ActivityAdapterWithOutput(os.Stdout)
}

// ActivityAdapterWithOutput returns a new ActivityAdapter writing to the given output.
func ActivityAdapterWithOutput(out io.Writer) *cliadapter.ActivityAdapter {
	once.Do(initServices)
	return cliadapter.NewActivityAdapter(activityService, out)
}
