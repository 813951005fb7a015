package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
)

// confirmHeader is the rollback confirmation header for live projects.
const confirmHeader = "X-Confirm-Rollback"

type advanceBody struct {
	Force bool `json:"force"`
}

// advanceProject handles POST /v1/projects/:id/advance. A blocked gate is
// reported as a 400 carrying the full transition result so clients can show
// the gap.
func (s *Server) advanceProject(c *gin.Context) {
	var body advanceBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	result, err := s.services.Lifecycle.Advance(c.Request.Context(), primary.AdvanceRequest{
		ProjectID: c.Param("id"),
		ActorID:   actorID(c),
		Force:     body.Force,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

type rollbackBody struct {
	Reason      string `json:"reason"`
	TargetState string `json:"target_state"`
}

// rollbackProject handles POST /v1/projects/:id/rollback. Rolling back a
// live project requires the X-Confirm-Rollback header; without it the
// response is a 409 with requires_confirmation set.
func (s *Server) rollbackProject(c *gin.Context) {
	var body rollbackBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.services.Lifecycle.Rollback(c.Request.Context(), primary.RollbackRequest{
		ProjectID:   c.Param("id"),
		ActorID:     actorID(c),
		Reason:      body.Reason,
		TargetState: state.State(body.TargetState),
		Confirmed:   c.GetHeader(confirmHeader) == "true",
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if result.RequiresConfirmation {
		c.JSON(http.StatusConflict, result)
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// gateReport handles GET /v1/projects/:id/gates. The optional ?target=
// query narrows the report to one candidate transition.
func (s *Server) gateReport(c *gin.Context) {
	report, err := s.services.Lifecycle.GateReport(c.Request.Context(), primary.GateReportRequest{
		ProjectID:   c.Param("id"),
		TargetState: state.State(c.Query("target")),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
