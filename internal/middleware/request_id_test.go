package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
)

func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		if captured != nil {
			*captured = middleware.GetRequestID(c)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var captured string
	router := newRequestIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, captured)
}

func TestRequestID_ClientProvidedID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		reused   bool
	}{
		{name: "printable id is reused", clientID: "client-provided-id-12345", reused: true},
		{name: "id with spaces is replaced", clientID: "two words", reused: false},
		{name: "overlong id is replaced", clientID: strings.Repeat("a", 200), reused: false},
		{name: "non-ascii id is replaced", clientID: "idé", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRequestIDRouter(nil)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(middleware.RequestIDHeader, tt.clientID)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			if tt.reused {
				assert.Equal(t, tt.clientID, got)
			} else {
				assert.NotEqual(t, tt.clientID, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty when not set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})

	t.Run("returns stored id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, "test-request-id")
		assert.Equal(t, "test-request-id", middleware.GetRequestID(c))
	})

	t.Run("empty when wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, 12345)
		assert.Empty(t, middleware.GetRequestID(c))
	})
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	router := newRequestIDRouter(nil)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		seen[w.Header().Get(middleware.RequestIDHeader)] = true
	}

	assert.Len(t, seen, 3)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/blog", nil)
	c.Set(middleware.RequestIDKey, "abc")

	assert.NotNil(t, middleware.RequestLogger(c))
}
