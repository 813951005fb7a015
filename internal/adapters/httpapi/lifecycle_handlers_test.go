package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/ports/secondary"
)

// stubLifecycle implements primary.LifecycleService with canned responses.
type stubLifecycle struct {
	advanceResult  *primary.TransitionResult
	advanceErr     error
	rollbackResult *primary.TransitionResult
	rollbackErr    error
	report         *primary.GateReport
	reportErr      error

	lastAdvance  primary.AdvanceRequest
	lastRollback primary.RollbackRequest
}

func (s *stubLifecycle) Advance(ctx context.Context, req primary.AdvanceRequest) (*primary.TransitionResult, error) {
	s.lastAdvance = req
	return s.advanceResult, s.advanceErr
}

func (s *stubLifecycle) Rollback(ctx context.Context, req primary.RollbackRequest) (*primary.TransitionResult, error) {
	s.lastRollback = req
	return s.rollbackResult, s.rollbackErr
}

func (s *stubLifecycle) GateReport(ctx context.Context, req primary.GateReportRequest) (*primary.GateReport, error) {
	return s.report, s.reportErr
}

func lifecycleTestRouter(stub *stubLifecycle) *gin.Engine {
	server := NewServer(Services{Lifecycle: stub}, map[string]string{"token": "user-1"})
	return server.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdvanceHandler_Success(t *testing.T) {
	stub := &stubLifecycle{
		advanceResult: &primary.TransitionResult{
			Success:       true,
			PreviousState: state.StatePlanning,
			CurrentState:  state.StateResearch,
			Message:       "Project advanced from planning to research",
		},
	}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/advance", map[string]any{"force": false}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "proj-1", stub.lastAdvance.ProjectID)
	assert.Equal(t, "user-1", stub.lastAdvance.ActorID)

	var result primary.TransitionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, state.StateResearch, result.CurrentState)
}

func TestAdvanceHandler_GateBlocked(t *testing.T) {
	blocked := state.GateStatus{
		FromState:      state.StateResearch,
		ToState:        state.StateDecisionsLocked,
		CanAdvance:     false,
		Requirement:    "Requires at least 3 resolved topics",
		CurrentCount:   1,
		RequiredCount:  3,
		BlockingReason: "Requires at least 3 resolved topics (1/3)",
	}
	stub := &stubLifecycle{
		advanceResult: &primary.TransitionResult{
			Success:       false,
			PreviousState: state.StateResearch,
			CurrentState:  state.StateResearch,
			Message:       blocked.BlockingReason,
			GateStatus:    &blocked,
		},
	}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/advance", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var result primary.TransitionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.GateStatus)
	assert.Equal(t, 1, result.GateStatus.CurrentCount)
	assert.Equal(t, 3, result.GateStatus.RequiredCount)
}

func TestAdvanceHandler_ForceFlag(t *testing.T) {
	stub := &stubLifecycle{
		advanceResult: &primary.TransitionResult{Success: true, PreviousState: state.StateResearch, CurrentState: state.StateDecisionsLocked},
	}
	router := lifecycleTestRouter(stub)

	doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/advance", map[string]any{"force": true}, nil)

	assert.True(t, stub.lastAdvance.Force)
}

func TestAdvanceHandler_NotFound(t *testing.T) {
	stub := &stubLifecycle{advanceErr: fmt.Errorf("project proj-x: %w", secondary.ErrNotFound)}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-x/advance", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvanceHandler_TerminalState(t *testing.T) {
	stub := &stubLifecycle{advanceErr: state.ErrAtTerminalState}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/advance", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceHandler_ConcurrentModification(t *testing.T) {
	stub := &stubLifecycle{advanceErr: fmt.Errorf("project proj-1 moved from planning: %w", secondary.ErrConcurrentModification)}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/advance", nil, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRollbackHandler_Success(t *testing.T) {
	stub := &stubLifecycle{
		rollbackResult: &primary.TransitionResult{
			Success:        true,
			PreviousState:  state.StateTesting,
			CurrentState:   state.StateBuilding,
			RollbackReason: "flaky integration suite",
		},
	}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/rollback",
		map[string]any{"reason": "flaky integration suite"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "flaky integration suite", stub.lastRollback.Reason)
	assert.False(t, stub.lastRollback.Confirmed)
}

func TestRollbackHandler_TargetState(t *testing.T) {
	stub := &stubLifecycle{
		rollbackResult: &primary.TransitionResult{Success: true, PreviousState: state.StateTesting, CurrentState: state.StateResearch},
	}
	router := lifecycleTestRouter(stub)

	doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/rollback",
		map[string]any{"reason": "r", "target_state": "research"}, nil)

	assert.Equal(t, state.StateResearch, stub.lastRollback.TargetState)
}

func TestRollbackHandler_RequiresConfirmation(t *testing.T) {
	stub := &stubLifecycle{
		rollbackResult: &primary.TransitionResult{
			Success:              false,
			PreviousState:        state.StateLive,
			CurrentState:         state.StateLive,
			RequiresConfirmation: true,
		},
	}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/rollback",
		map[string]any{"reason": "regression"}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	var result primary.TransitionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.RequiresConfirmation)
}

func TestRollbackHandler_ConfirmationHeader(t *testing.T) {
	stub := &stubLifecycle{
		rollbackResult: &primary.TransitionResult{Success: true, PreviousState: state.StateLive, CurrentState: state.StateReadyToShip},
	}
	router := lifecycleTestRouter(stub)

	doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/rollback",
		map[string]any{"reason": "regression"}, map[string]string{"X-Confirm-Rollback": "true"})

	assert.True(t, stub.lastRollback.Confirmed)
}

func TestRollbackHandler_MissingReason(t *testing.T) {
	stub := &stubLifecycle{rollbackErr: state.ErrMissingRollbackReason}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodPost, "/v1/projects/proj-1/rollback", map[string]any{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGateReportHandler(t *testing.T) {
	stub := &stubLifecycle{
		report: &primary.GateReport{
			ProjectID:    "proj-1",
			CurrentState: state.StatePlanning,
			NextState:    state.StateResearch,
			CanAdvance:   false,
			Gates: []state.GateStatus{
				{FromState: state.StatePlanning, ToState: state.StateResearch, BlockingReason: "Requires at least 1 PRD artifact (0/1)"},
			},
		},
	}
	router := lifecycleTestRouter(stub)

	w := doJSON(t, router, http.MethodGet, "/v1/projects/proj-1/gates", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var report primary.GateReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report.Gates, 1)
	assert.False(t, report.CanAdvance)
}

func TestHealthEndpoint_NoAuth(t *testing.T) {
	router := lifecycleTestRouter(&stubLifecycle{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
