package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// api holds the injected store handle; no process-wide singleton.
type api struct {
	store types.Store
}

// now is stubbed in tests to pin the POST timestamp.
var now = time.Now

// listTitles handles GET /documents.
func (a *api) listTitles(c *gin.Context) {
	titles, err := a.store.ListTitles()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

// listRevisions handles GET /documents/:title.
func (a *api) listRevisions(c *gin.Context) {
	revisions, err := a.store.ListRevisions(c.Param("title"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, revisions)
}

// postRevision handles POST /documents/:title. The revision instant is
// server-assigned. A failed write always produces a failure response; no
// fabricated success.
func (a *api) postRevision(c *gin.Context) {
	title := c.Param("title")

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "bad_request",
			"message": "request body must be JSON with a content field",
		})
		return
	}

	documentID, err := a.store.PostRevision(title, now(), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("New revision saved to %s", title),
		"document_id": documentID,
	})
}

// revisionAt handles GET /documents/:title/latest and
// GET /documents/:title/:timestamp.
func (a *api) revisionAt(c *gin.Context) {
	title := c.Param("title")
	param := c.Param("timestamp")

	if param == "latest" {
		rev, err := a.store.Latest(title)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rev)
		return
	}

	at, err := types.ParseInstant(param)
	if err != nil {
		writeError(c, err)
		return
	}

	rev, err := a.store.AsOf(title, at)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}
