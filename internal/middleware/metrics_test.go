package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records route template, not raw path", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/post/:id", func(c *gin.Context) {
			c.String(http.StatusOK, "post")
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/post/:id", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/post/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/post/:id", "200"))
		assert.Equal(t, initialTotal+1, newTotal, "Request counter should increment")
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight), "In-flight should return to initial after request")
	})

	t.Run("unmatched routes share one label", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("redirects are recorded with their status", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/delete/:id", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/")
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/delete/:id", "302"))

		req := httptest.NewRequest(http.MethodPost, "/delete/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/delete/:id", "302"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("skips metrics endpoint and static files", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})
		router.GET("/static/*filepath", func(c *gin.Context) {
			c.String(http.StatusOK, "asset")
		})

		initialMetrics := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200"))
		initialStatic := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/static/*filepath", "200"))

		for _, path := range []string{"/metrics", "/static/css/site.css"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initialMetrics, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
		assert.Equal(t, initialStatic, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/static/*filepath", "200")))
	})
}
