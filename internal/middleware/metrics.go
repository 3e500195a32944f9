// Package middleware provides the gin middleware chain of the site.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
)

// Metrics records request count, latency and in-flight gauge per route.
// The scrape endpoint and static assets are not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipMetrics(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// route template keeps label cardinality bounded (/post/:id, not /post/42)
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

func skipMetrics(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/static/")
}
