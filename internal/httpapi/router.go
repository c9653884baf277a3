// Package httpapi exposes the revision store over HTTP. It is thin plumbing:
// every route resolves to one Store operation, and every Store error kind
// maps to one status code and a stable error body.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mesh-intelligence/scriptorium/pkg/metrics"
	"github.com/mesh-intelligence/scriptorium/pkg/types"
)

// NewRouter builds the gin engine with all routes and middleware registered.
func NewRouter(store types.Store) *gin.Engine {
	a := &api{store: store}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Scriptorium document revision store")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	r.GET("/documents", a.listTitles)
	r.GET("/documents/:title", a.listRevisions)
	r.POST("/documents/:title", a.postRevision)
	// The latest route shares the :timestamp parameter slot; the handler
	// branches on the literal value.
	r.GET("/documents/:title/:timestamp", a.revisionAt)

	return r
}
