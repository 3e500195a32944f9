package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
	"github.com/AdrianaGRO/PyArch.dev/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSessions = auth.NewManager("handler-test-secret", false)

// newTestRouter returns an engine with the embedded templates and the
// session middleware installed.
func newTestRouter(t *testing.T) (*gin.Engine, *web.Renderer) {
	t.Helper()
	renderer, err := web.NewRenderer(web.EmbeddedTemplates())
	require.NoError(t, err)

	router := gin.New()
	router.HTMLRender = renderer
	router.Use(middleware.Session(testSessions))
	return router, renderer
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := testSessions.Encode(&auth.Session{Authenticated: true})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

// responseSession decodes the session cookie set by the response.
func responseSession(t *testing.T, w *httptest.ResponseRecorder) *auth.Session {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name != auth.SessionCookie {
			continue
		}
		if c.MaxAge < 0 {
			return &auth.Session{}
		}
		s, err := testSessions.Decode(c.Value)
		require.NoError(t, err)
		return s
	}
	return nil
}

func serve(router *gin.Engine, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
