package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/bpos/internal/app"
	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/ports/secondary"
)

// writeError maps service errors onto HTTP statuses. Boundary and
// validation failures are 400s; the concurrency sentinel is a 409 so
// clients know a retry may succeed.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, secondary.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, state.ErrUnknownState),
		errors.Is(err, state.ErrAtTerminalState),
		errors.Is(err, state.ErrAtInitialState),
		errors.Is(err, state.ErrMissingRollbackReason),
		errors.Is(err, state.ErrInvalidRollbackTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
