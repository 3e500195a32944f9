package repository

import (
	"context"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

// JSONPostRepository implements PostRepository on top of posts.json.
type JSONPostRepository struct {
	doc document
}

// NewJSONPostRepository creates a posts repository. Posts are normally
// loaded in Strict mode: a missing or corrupt file fails the request.
func NewJSONPostRepository(path string, mode LoadMode) *JSONPostRepository {
	return &JSONPostRepository{doc: document{name: "posts", path: path, mode: mode}}
}

// Mode returns the load mode the repository was built with.
func (r *JSONPostRepository) Mode() LoadMode { return r.doc.mode }

// Path returns the backing file.
func (r *JSONPostRepository) Path() string { return r.doc.path }

// LoadAll reads every post, including unpublished ones.
func (r *JSONPostRepository) LoadAll(ctx context.Context) ([]domain.Post, error) {
	posts, err := readDocument(ctx, r.doc, []domain.Post{})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// SaveAll rewrites posts.json with the full collection.
func (r *JSONPostRepository) SaveAll(ctx context.Context, posts []domain.Post) error {
	if posts == nil {
		posts = []domain.Post{}
	}
	return writeDocument(ctx, r.doc, posts)
}
