package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/bpos/internal/ports/primary"
)

func (s *Server) createArtifact(c *gin.Context) {
	var req primary.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	artifact, err := s.services.Artifacts.CreateArtifact(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artifact)
}

func (s *Server) getArtifact(c *gin.Context) {
	artifact, err := s.services.Artifacts.GetArtifact(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (s *Server) updateArtifact(c *gin.Context) {
	var req primary.UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ArtifactID = c.Param("id")
	artifact, err := s.services.Artifacts.UpdateArtifact(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (s *Server) deleteArtifact(c *gin.Context) {
	if err := s.services.Artifacts.DeleteArtifact(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listArtifacts(c *gin.Context) {
	artifacts, err := s.services.Artifacts.ListArtifacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

func (s *Server) createTopic(c *gin.Context) {
	var req primary.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	topic, err := s.services.Topics.CreateTopic(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (s *Server) getTopic(c *gin.Context) {
	topic, err := s.services.Topics.GetTopic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (s *Server) updateTopic(c *gin.Context) {
	var req primary.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.TopicID = c.Param("id")
	topic, err := s.services.Topics.UpdateTopic(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (s *Server) deleteTopic(c *gin.Context) {
	if err := s.services.Topics.DeleteTopic(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTopics(c *gin.Context) {
	topics, err := s.services.Topics.ListTopics(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (s *Server) createADR(c *gin.Context) {
	var req primary.CreateADRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	adr, err := s.services.ADRs.CreateADR(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adr)
}

func (s *Server) getADR(c *gin.Context) {
	adr, err := s.services.ADRs.GetADR(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, adr)
}

func (s *Server) updateADR(c *gin.Context) {
	var req primary.UpdateADRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ADRID = c.Param("id")
	adr, err := s.services.ADRs.UpdateADR(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, adr)
}

func (s *Server) deleteADR(c *gin.Context) {
	if err := s.services.ADRs.DeleteADR(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listADRs(c *gin.Context) {
	adrs, err := s.services.ADRs.ListADRs(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adrs": adrs})
}

func (s *Server) createTask(c *gin.Context) {
	var req primary.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	task, err := s.services.Tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c *gin.Context) {
	task, err := s.services.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c *gin.Context) {
	var req primary.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.TaskID = c.Param("id")
	task, err := s.services.Tasks.UpdateTask(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	if err := s.services.Tasks.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTasks(c *gin.Context) {
	tasks, err := s.services.Tasks.ListTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) taskCanStart(c *gin.Context) {
	readiness, err := s.services.Tasks.CanStart(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, readiness)
}

func (s *Server) createTest(c *gin.Context) {
	var req primary.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	test, err := s.services.Tests.CreateTest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (s *Server) getTest(c *gin.Context) {
	test, err := s.services.Tests.GetTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (s *Server) updateTest(c *gin.Context) {
	var req primary.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.TestID = c.Param("id")
	test, err := s.services.Tests.UpdateTest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (s *Server) recordTestResult(c *gin.Context) {
	var req primary.RecordTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.TestID = c.Param("id")
	test, err := s.services.Tests.RecordResult(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (s *Server) deleteTest(c *gin.Context) {
	if err := s.services.Tests.DeleteTest(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTests(c *gin.Context) {
	tests, err := s.services.Tests.ListTests(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tests": tests})
}

func (s *Server) createRisk(c *gin.Context) {
	var req primary.CreateRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.ActorID = actorID(c)
	risk, err := s.services.Risks.CreateRisk(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, risk)
}

func (s *Server) getRisk(c *gin.Context) {
	risk, err := s.services.Risks.GetRisk(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk)
}

func (s *Server) updateRisk(c *gin.Context) {
	var req primary.UpdateRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.RiskID = c.Param("id")
	risk, err := s.services.Risks.UpdateRisk(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk)
}

func (s *Server) deleteRisk(c *gin.Context) {
	if err := s.services.Risks.DeleteRisk(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listRisks(c *gin.Context) {
	risks, err := s.services.Risks.ListRisks(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"risks": risks})
}
