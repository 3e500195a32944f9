package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadMode_String(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "lenient", Lenient.String())
	assert.Equal(t, "LoadMode(7)", LoadMode(7).String())
}

func TestJSONPostRepository_LoadAll(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		mode    LoadMode
		wantLen int
		wantErr error
	}{
		{name: "strict missing file", mode: Strict, wantErr: domain.ErrStorageUnavailable},
		{name: "strict malformed file", content: ptr("{not json"), mode: Strict, wantErr: domain.ErrMalformedStorage},
		{name: "lenient missing file", mode: Lenient, wantLen: 0},
		{name: "lenient malformed file", content: ptr("[{"), mode: Lenient, wantLen: 0},
		{name: "empty list", content: ptr("[]"), mode: Strict, wantLen: 0},
		{name: "null document", content: ptr("null"), mode: Strict, wantLen: 0},
		{
			name:    "two posts",
			content: ptr(`[{"id":1,"title":"A","content":"a","category":"x"},{"id":2,"title":"B","content":"b","category":"y","published":false}]`),
			mode:    Strict,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "posts.json")
			if tt.content != nil {
				writeFile(t, path, *tt.content)
			}

			repo := NewJSONPostRepository(path, tt.mode)
			posts, err := repo.LoadAll(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, posts)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, posts)
			assert.Len(t, posts, tt.wantLen)
		})
	}
}

func TestJSONPostRepository_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "content", "posts.json")
	repo := NewJSONPostRepository(path, Strict)
	ctx := context.Background()

	hidden := false
	posts := []domain.Post{
		{ID: 1, Title: "Hello <World>", Content: "a & b", Category: "go", CreatedAt: "2026-01-02 03:04:05"},
		{ID: 2, Title: "Draft", Content: "wip", Category: "", Published: &hidden},
	}
	require.NoError(t, repo.SaveAll(ctx, posts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Hello <World>")
	assert.Contains(t, string(raw), "a & b")
	assert.NotContains(t, string(raw), `\u003c`)
	assert.True(t, strings.HasPrefix(string(raw), "[\n    {"), "expected four-space indentation, got %q", string(raw))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Hello <World>", loaded[0].Title)
	assert.True(t, loaded[0].IsPublished())
	assert.False(t, loaded[1].IsPublished())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestJSONPostRepository_LoadSaveKeepsLegacyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	raw := `[
		{"id": 1, "title": "Old", "content": "x", "date": "2024-01-01"},
		{"id": 2, "title": "N", "content": "y", "category": "a", "created_at": "", "published": null},
		{"id": 3, "title": "Draft", "content": "<b>z</b>", "category": "", "created_at": "2025-06-01 12:00:00", "published": false, "reading_time": 4.5}
	]`
	writeFile(t, path, raw)
	repo := NewJSONPostRepository(path, Strict)
	ctx := context.Background()

	posts, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(ctx, posts))

	assertSameJSON(t, raw, path)
}

// assertSameJSON compares want with the file at path as decoded values, so
// key order and whitespace do not matter.
func assertSameJSON(t *testing.T, want, path string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err)

	var wantValue, gotValue []map[string]any
	require.NoError(t, json.Unmarshal([]byte(want), &wantValue))
	require.NoError(t, json.Unmarshal(got, &gotValue))
	assert.Equal(t, wantValue, gotValue)
}

func TestJSONPostRepository_SaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	repo := NewJSONPostRepository(path, Strict)

	require.NoError(t, repo.SaveAll(context.Background(), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestJSONPostRepository_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	writeFile(t, path, "[]")
	repo := NewJSONPostRepository(path, Lenient)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.SaveAll(ctx, nil), context.Canceled)
}

func TestJSONProjectRepository_LenientCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	repo := NewJSONProjectRepository(path, Lenient)

	projects, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestJSONProjectRepository_ReadOnlyLeavesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	repo := NewJSONProjectRepository(path, Lenient).ReadOnly()
	ctx := context.Background()

	projects, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Equal(t, Lenient, repo.Mode())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "read-only load must not create the file")

	assert.ErrorIs(t, repo.SaveAll(ctx, nil), ErrReadOnly)
	_, statErr = os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestJSONProjectRepository_OddRecordDoesNotHideOthers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	raw := `[{"slug":"a","title":"A","featured":"yes"},{"slug":"b","title":"B"},{"slug":7,"title":"Seven"}]`
	writeFile(t, path, raw)
	repo := NewJSONProjectRepository(path, Lenient)
	ctx := context.Background()

	projects, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.True(t, projects[0].Featured)
	assert.Equal(t, "b", projects[1].Slug)
	assert.Equal(t, "Seven", projects[2].Title)

	require.NoError(t, repo.SaveAll(ctx, projects))
	assertSameJSON(t, raw, path)
}

func TestJSONProjectRepository_StrictMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	repo := NewJSONProjectRepository(path, Strict)

	_, err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestJSONProjectRepository_FindBySlug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	writeFile(t, path, `[
		{"slug":"site","title":"Site","featured":true,"stack":["go"]},
		{"slug":"cli","title":"CLI"}
	]`)
	repo := NewJSONProjectRepository(path, Lenient)
	ctx := context.Background()

	project, err := repo.FindBySlug(ctx, "site")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "Site", project.Title)
	assert.True(t, project.Featured)
	assert.NotNil(t, project.Field("stack"))

	missing, err := repo.FindBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJSONProjectRepository_SaveKeepsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	writeFile(t, path, `[{"slug":"site","title":"Site","links":{"repo":"https://example.com"}}]`)
	repo := NewJSONProjectRepository(path, Strict)
	ctx := context.Background()

	projects, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	projects[0].Title = "Renamed"
	require.NoError(t, repo.SaveAll(ctx, projects))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Renamed"`)
	assert.Contains(t, string(raw), `"https://example.com"`)
}

func TestJSONPricingRepository_Load(t *testing.T) {
	t.Run("lenient missing file yields empty pricing", func(t *testing.T) {
		repo := NewJSONPricingRepository(filepath.Join(t.TempDir(), "pricing.json"), Lenient)

		pricing, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.NotNil(t, pricing)
		assert.Empty(t, pricing.PricingTierInfo())
		assert.Empty(t, pricing.UseCaseList())
	})

	t.Run("strict malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.json")
		writeFile(t, path, `{"services":`)
		repo := NewJSONPricingRepository(path, Strict)

		pricing, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrMalformedStorage)
		assert.Nil(t, pricing)
	})

	t.Run("decodes sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pricing.json")
		writeFile(t, path, `{
			"services": {"consulting": {"rate": "100"}},
			"pricing_tiers": {"basic": {"price": 10}},
			"contact": {"email": "me@example.com"},
			"use_cases": ["a", "b"]
		}`)
		repo := NewJSONPricingRepository(path, Lenient)

		pricing, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "100", pricing.ServiceInfo("consulting")["rate"])
		assert.Empty(t, pricing.ServiceInfo("missing"))
		assert.Equal(t, "me@example.com", pricing.ContactInfo()["email"])
		assert.Len(t, pricing.UseCaseList(), 2)
		assert.Contains(t, pricing.PricingTierInfo(), "basic")
	})
}

func ptr(s string) *string { return &s }
