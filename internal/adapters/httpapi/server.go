// Package httpapi exposes the application services over HTTP with gin.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/version"
)

// Services bundles the primary ports the HTTP layer exposes.
type Services struct {
	Apps      primary.AppService
	Projects  primary.ProjectService
	Lifecycle primary.LifecycleService
	Artifacts primary.ArtifactService
	Topics    primary.TopicService
	ADRs      primary.ADRService
	Tasks     primary.TaskService
	Tests     primary.TestService
	Risks     primary.RiskService
	Activity  primary.ActivityService
	Assistant primary.AssistantService
}

// Server wires the services into a gin router.
type Server struct {
	services Services
	tokens   map[string]string
}

// NewServer creates a Server. tokens maps bearer tokens to actor IDs; an
// empty map rejects every /v1 request.
func NewServer(services Services, tokens map[string]string) *Server {
	return &Server{
		services: services,
		tokens:   tokens,
	}
}

// Router builds the HTTP routing tree. /health is public; everything under
// /v1 requires a bearer token.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Version,
		})
	})

	v1 := router.Group("/v1")
	v1.Use(BearerAuth(s.tokens))

	apps := v1.Group("/apps")
	{
		apps.POST("", s.createApp)
		apps.GET("", s.listApps)
		apps.GET("/:id", s.getApp)
		apps.PUT("/:id", s.updateApp)
		apps.DELETE("/:id", s.deleteApp)
	}

	projects := v1.Group("/projects")
	{
		projects.POST("", s.createProject)
		projects.GET("", s.listProjects)
		projects.GET("/:id", s.getProject)
		projects.PUT("/:id", s.updateProject)
		projects.DELETE("/:id", s.deleteProject)

		projects.POST("/:id/advance", s.advanceProject)
		projects.POST("/:id/rollback", s.rollbackProject)
		projects.GET("/:id/gates", s.gateReport)
		projects.GET("/:id/stats", s.projectStats)
		projects.GET("/:id/activity", s.listActivity)

		projects.GET("/:id/artifacts", s.listArtifacts)
		projects.GET("/:id/topics", s.listTopics)
		projects.GET("/:id/adrs", s.listADRs)
		projects.GET("/:id/tasks", s.listTasks)
		projects.GET("/:id/tests", s.listTests)
		projects.GET("/:id/risks", s.listRisks)
	}

	artifacts := v1.Group("/artifacts")
	{
		artifacts.POST("", s.createArtifact)
		artifacts.GET("/:id", s.getArtifact)
		artifacts.PUT("/:id", s.updateArtifact)
		artifacts.DELETE("/:id", s.deleteArtifact)
	}

	topics := v1.Group("/topics")
	{
		topics.POST("", s.createTopic)
		topics.GET("/:id", s.getTopic)
		topics.PUT("/:id", s.updateTopic)
		topics.DELETE("/:id", s.deleteTopic)
	}

	adrs := v1.Group("/adrs")
	{
		adrs.POST("", s.createADR)
		adrs.GET("/:id", s.getADR)
		adrs.PUT("/:id", s.updateADR)
		adrs.DELETE("/:id", s.deleteADR)
	}

	tasks := v1.Group("/tasks")
	{
		tasks.POST("", s.createTask)
		tasks.GET("/:id", s.getTask)
		tasks.PUT("/:id", s.updateTask)
		tasks.DELETE("/:id", s.deleteTask)
		tasks.GET("/:id/can-start", s.taskCanStart)
	}

	tests := v1.Group("/tests")
	{
		tests.POST("", s.createTest)
		tests.GET("/:id", s.getTest)
		tests.PUT("/:id", s.updateTest)
		tests.DELETE("/:id", s.deleteTest)
		tests.POST("/:id/result", s.recordTestResult)
	}

	risks := v1.Group("/risks")
	{
		risks.POST("", s.createRisk)
		risks.GET("/:id", s.getRisk)
		risks.PUT("/:id", s.updateRisk)
		risks.DELETE("/:id", s.deleteRisk)
	}

	v1.POST("/assistant", s.assistantDraft)

	return router
}
