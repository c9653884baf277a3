package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/scriptorium/pkg/logger"
	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// writeError maps a store error kind to a status code and a stable error
// body of the form {"error": kind, "message": detail}. Anything that is not
// a recognized recoverable kind is treated as an infrastructure failure.
func writeError(c *gin.Context, err error) {
	var noRev *types.NoRevisionAtTimestampError

	switch {
	case errors.Is(err, types.ErrNoData):
		c.JSON(http.StatusNotFound, errorBody("no_data", err))
	case errors.Is(err, types.ErrTitleNotFound):
		c.JSON(http.StatusNotFound, errorBody("title_not_found", err))
	case errors.As(err, &noRev):
		body := errorBody("no_revision_at_timestamp", err)
		body["earliest_timestamp"] = types.FormatInstant(noRev.Earliest)
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, types.ErrNoChanges):
		c.JSON(http.StatusConflict, errorBody("no_changes", err))
	case errors.Is(err, types.ErrTitleTooLong):
		c.JSON(http.StatusBadRequest, errorBody("title_too_long", err))
	case errors.Is(err, types.ErrBadTimestamp):
		c.JSON(http.StatusBadRequest, errorBody("bad_timestamp", err))
	default:
		logger.Errorf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "storage",
			"message": "internal storage failure",
		})
	}
}

func errorBody(kind string, err error) gin.H {
	return gin.H{"error": kind, "message": err.Error()}
}
