package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
	"github.com/AdrianaGRO/PyArch.dev/internal/repository"
	"github.com/AdrianaGRO/PyArch.dev/internal/service"
	"github.com/AdrianaGRO/PyArch.dev/internal/upload"
	"github.com/AdrianaGRO/PyArch.dev/internal/validator"
	"github.com/AdrianaGRO/PyArch.dev/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testUser     = "admin"
	testPassword = "correct horse"
)

type site struct {
	router     *gin.Engine
	contentDir string
	staticDir  string
	cookie     *http.Cookie
}

func newSite(t *testing.T, maxBody int64) *site {
	t.Helper()

	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	staticDir := filepath.Join(root, "static")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "posts.json"), []byte("[]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "projects.json"),
		[]byte(`[{"slug":"data-cleaner","title":"Data Cleaner","featured":true},{"slug":"site","title":"This Site"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "pricing.json"),
		[]byte(`{"contact":{"email":"hello@pyarch.dev"}}`), 0o644))

	svc := service.NewContentService(
		repository.NewJSONPostRepository(filepath.Join(contentDir, "posts.json"), repository.Strict),
		repository.NewJSONProjectRepository(filepath.Join(contentDir, "projects.json"), repository.Lenient),
		repository.NewJSONPricingRepository(filepath.Join(contentDir, "pricing.json"), repository.Lenient),
		upload.NewIngestor(upload.NewDiskStore(filepath.Join(staticDir, "uploads")), []string{"png", "jpg", "jpeg", "gif"}),
		validator.NewValidator(),
	)
	svc.SetClock(func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) })

	renderer, err := web.NewRenderer(web.EmbeddedTemplates())
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(metrics.NewContentCollector(svc)))

	router := NewRouter(Deps{
		Content:      svc,
		Sessions:     auth.NewManager("router-test-secret", false),
		Gate:         auth.NewGate(auth.Credentials{Username: testUser, Password: testPassword}),
		Renderer:     renderer,
		ContentDir:   contentDir,
		StaticDir:    staticDir,
		MaxBodyBytes: maxBody,
		Gatherer:     registry,
	})

	return &site{router: router, contentDir: contentDir, staticDir: staticDir}
}

// do sends req with the current session cookie and keeps whatever
// session cookie the response sets.
func (s *site) do(req *http.Request) *httptest.ResponseRecorder {
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name != auth.SessionCookie {
			continue
		}
		if c.MaxAge < 0 {
			s.cookie = nil
		} else {
			s.cookie = &http.Cookie{Name: c.Name, Value: c.Value}
		}
	}
	return w
}

func (s *site) get(target string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *site) postForm(target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *site) login(t *testing.T) {
	t.Helper()
	w := s.postForm("/login", url.Values{"username": {testUser}, "password": {testPassword}})
	require.Equal(t, http.StatusFound, w.Code)
	require.NotNil(t, s.cookie)
}

func (s *site) storedPosts(t *testing.T) []domain.Post {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.contentDir, "posts.json"))
	require.NoError(t, err)
	var posts []domain.Post
	require.NoError(t, json.Unmarshal(data, &posts))
	return posts
}

func TestRouter_CreatePostWithImage(t *testing.T) {
	s := newSite(t, 1<<20)

	w := s.get("/create")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fcreate", w.Header().Get("Location"))

	w = s.postForm("/login?next=%2Fcreate", url.Values{"username": {testUser}, "password": {testPassword}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/create", w.Header().Get("Location"))

	w = s.get("/create")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful!")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Hello Go"))
	require.NoError(t, mw.WriteField("content", "First **post**."))
	require.NoError(t, mw.WriteField("category", "golang"))
	part, err := mw.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = s.do(req)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	posts := s.storedPosts(t)
	require.Len(t, posts, 1)
	post := posts[0]
	assert.Equal(t, 1, post.ID)
	assert.Equal(t, "2026-03-01 09:30:00", post.CreatedAt)
	assert.Regexp(t, `^First \*\*post\*\*\.\n\n!\[Hello Go\]\(/static/uploads/[0-9a-f]{32}\.png\)\n\n$`, post.Content)

	imageURL := post.Content[strings.Index(post.Content, "(")+1 : strings.Index(post.Content, ")")]
	w = s.get(imageURL)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "\x89PNG\r\n\x1a\nfake", w.Body.String())

	w = s.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Post created successfully!")
	assert.Contains(t, w.Body.String(), "Hello Go")

	w = s.get("/post/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>post</strong>")
	assert.Contains(t, w.Body.String(), `alt="Hello Go"`)
}

func TestRouter_EditAndDelete(t *testing.T) {
	s := newSite(t, 1<<20)
	s.login(t)

	w := s.postForm("/create", url.Values{"title": {"Original"}, "content": {"Body"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = s.postForm("/edit/1", url.Values{"title": {"Renamed"}, "content": {"New body"}, "category": {"notes"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/post/1", w.Header().Get("Location"))

	posts := s.storedPosts(t)
	require.Len(t, posts, 1)
	assert.Equal(t, "Renamed", posts[0].Title)
	assert.Equal(t, "notes", posts[0].Category)
	assert.Equal(t, "2026-03-01 09:30:00", posts[0].CreatedAt)

	w = s.postForm("/delete/999", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Len(t, s.storedPosts(t), 1)

	w = s.postForm("/delete/1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, s.storedPosts(t))

	w = s.get("/post/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ValidationKeepsStorageUntouched(t *testing.T) {
	s := newSite(t, 1<<20)
	s.login(t)

	w := s.postForm("/create", url.Values{"title": {""}, "content": {"Body"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required.")
	assert.Empty(t, s.storedPosts(t))
}

func TestRouter_Login(t *testing.T) {
	t.Run("rejects external next", func(t *testing.T) {
		s := newSite(t, 0)
		w := s.postForm("/login?next="+url.QueryEscape("//evil.example/x"), url.Values{"username": {testUser}, "password": {testPassword}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("bad credentials", func(t *testing.T) {
		s := newSite(t, 0)
		w := s.postForm("/login", url.Values{"username": {testUser}, "password": {"wrong"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password")

		w = s.get("/create")
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		s := newSite(t, 0)
		s.login(t)

		w := s.get("/logout")
		assert.Equal(t, http.StatusFound, w.Code)

		w = s.get("/create")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?next=%2Fcreate", w.Header().Get("Location"))
	})
}

func TestRouter_PublicPages(t *testing.T) {
	s := newSite(t, 0)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/", http.StatusOK, "Data Cleaner"},
		{"/blog", http.StatusOK, "Blog"},
		{"/about", http.StatusOK, "About"},
		{"/contact", http.StatusOK, "hello@pyarch.dev"},
		{"/pricing", http.StatusOK, "Pricing details are coming soon."},
		{"/projects", http.StatusOK, "This Site"},
		{"/projects/data-cleaner", http.StatusOK, "project-data-cleaner"},
		{"/projects/site", http.StatusOK, "This Site"},
		{"/projects/ghost", http.StatusNotFound, "Project not found"},
		{"/post/999", http.StatusNotFound, "Post not found"},
		{"/post/abc", http.StatusNotFound, "Post not found"},
		{"/nowhere", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.get(tt.path)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_OversizedUpload(t *testing.T) {
	s := newSite(t, 1024)
	s.login(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Big"))
	require.NoError(t, mw.WriteField("content", "Body"))
	part, err := mw.CreateFormFile("image", "big.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 4096))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/create", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := s.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, s.storedPosts(t))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	s := newSite(t, 0)

	w := s.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	require.NoError(t, os.RemoveAll(s.contentDir))
	w = s.get("/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = s.get("/live")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	s := newSite(t, 0)
	s.login(t)
	w := s.postForm("/create", url.Values{"title": {"Counted"}, "content": {"Body"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = s.get("/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pyarch_content_posts{visibility="published"} 1`)
	assert.Contains(t, w.Body.String(), "pyarch_content_projects 2")
}
